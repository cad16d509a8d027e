package controllers

import (
	"net/http"

	"github.com/bekosher/bekosher-api/models"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	admin AdminService
}

func NewAdminController(admin AdminService) *AdminController {
	return &AdminController{admin: admin}
}

func (c *AdminController) GetEstablishments(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}

	var status *models.EstablishmentStatus
	if raw := ctx.Query("status"); raw != "" {
		parsed := models.EstablishmentStatus(raw)
		switch parsed {
		case models.EstablishmentPending, models.EstablishmentApproved, models.EstablishmentRejected:
			status = &parsed
		default:
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid status filter")
			return
		}
	}

	establishments, pagination, err := c.admin.ListEstablishments(ctx.Request.Context(), caller, status, pageFromQuery(ctx))
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"establishments": establishments,
		"metadata":       pagination,
	})
}

func (c *AdminController) ApproveEstablishment(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.admin.Approve(ctx.Request.Context(), caller, id); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Establishment approved."})
}

func (c *AdminController) RejectEstablishment(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.admin.Reject(ctx.Request.Context(), caller, id); err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Establishment rejected."})
}
