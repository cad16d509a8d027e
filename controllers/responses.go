package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bekosher/bekosher-api/middlewares"
	"github.com/bekosher/bekosher-api/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func sendErrorResponse(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{"message": message})
}

func sendJSONResponse(ctx *gin.Context, statusCode int, data any) {
	ctx.JSON(statusCode, data)
}

// bindJSON binds the request body and turns binding failures into a
// ValidationError. Unknown fields are rejected by the binding setup.
func bindJSON(ctx *gin.Context, obj any) error {
	err := ctx.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return &services.ValidationError{Message: "Request body is required"}
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return bindingError(validationErrors)
	}
	return &services.ValidationError{Message: "Invalid request body: " + err.Error()}
}

func bindingError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &services.ValidationError{Message: err.Error()}
	}
	fields := make([]services.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, services.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: "failed on the '" + fe.Tag() + "' rule",
		})
	}
	return &services.ValidationError{Message: "Invalid request body", Fields: fields}
}

// fieldPath turns "CreateOrderInput.Items[0].Quantity" into
// "items.0.quantity".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var out []string
	for _, part := range parts {
		name, index, hasIndex := strings.Cut(part, "[")
		if name != "" {
			out = append(out, strings.ToLower(name[:1])+name[1:])
		}
		if hasIndex {
			out = append(out, strings.TrimSuffix(index, "]"))
		}
	}
	return strings.Join(out, ".")
}

// respondWithError maps service errors onto HTTP statuses.
func respondWithError(ctx *gin.Context, err error) {
	var (
		validationErr    *services.ValidationError
		authorizationErr *services.AuthorizationError
		notFoundErr      *services.NotFoundError
		businessErr      *services.BusinessRuleError
	)

	switch {
	case errors.As(err, &validationErr):
		body := gin.H{"message": validationErr.Message}
		if len(validationErr.Fields) > 0 {
			body["errors"] = validationErr.Fields
		}
		ctx.JSON(http.StatusBadRequest, body)
	case errors.As(err, &authorizationErr):
		sendErrorResponse(ctx, http.StatusForbidden, authorizationErr.Message)
	case errors.As(err, &notFoundErr):
		sendErrorResponse(ctx, http.StatusNotFound, capitalize(notFoundErr.Error()))
	case errors.As(err, &businessErr):
		status := http.StatusBadRequest
		if businessErr.Code == services.CodeConcurrentModification {
			status = http.StatusConflict
		}
		body := gin.H{"message": businessErr.Message, "code": businessErr.Code}
		for key, value := range businessErr.Details {
			body[key] = value
		}
		ctx.JSON(status, body)
	default:
		ctx.Error(err)
		slog.Error("request failed", "path", ctx.FullPath(), "error", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func currentActor(ctx *gin.Context) (services.Actor, bool) {
	caller, ok := middlewares.ActorFrom(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
	}
	return caller, ok
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse "+param)
		return 0, false
	}
	return uint(id), true
}

func pageFromQuery(ctx *gin.Context) services.Page {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	return services.Page{Page: page, Limit: limit}.Normalize()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
