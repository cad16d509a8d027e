package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// EstablishmentController serves the public, unauthenticated views.
type EstablishmentController struct {
	establishments EstablishmentService
}

func NewEstablishmentController(establishments EstablishmentService) *EstablishmentController {
	return &EstablishmentController{establishments: establishments}
}

func (c *EstablishmentController) GetEstablishments(ctx *gin.Context) {
	views, pagination, err := c.establishments.ListEstablishments(
		ctx.Request.Context(),
		ctx.Query("search"),
		ctx.Query("hasDelivery") == "true",
		pageFromQuery(ctx),
	)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"establishments": views,
		"metadata":       pagination,
	})
}

func (c *EstablishmentController) GetMenu(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	menu, err := c.establishments.Menu(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, menu)
}

func (c *EstablishmentController) GetAvailability(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var at *time.Time
	if raw := ctx.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Query parameter 'at' must be an RFC3339 timestamp")
			return
		}
		at = &parsed
	}

	availability, err := c.establishments.Availability(ctx.Request.Context(), id, at)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, availability)
}

func (c *EstablishmentController) GetMenuQRCode(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	png, err := c.establishments.MenuQRCode(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
