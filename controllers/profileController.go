package controllers

import (
	"net/http"

	"github.com/bekosher/bekosher-api/services"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	establishments EstablishmentService
}

func NewProfileController(establishments EstablishmentService) *ProfileController {
	return &ProfileController{establishments: establishments}
}

func (c *ProfileController) GetProfile(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	establishment, err := c.establishments.Profile(ctx.Request.Context(), caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"establishment": establishment})
}

func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.UpdateProfileInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}

	establishment, err := c.establishments.UpdateProfile(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":       "Profile updated successfully.",
		"establishment": establishment,
	})
}

func (c *ProfileController) UpdateDeliverySettings(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.DeliverySettingsInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}

	establishment, err := c.establishments.UpdateDeliverySettings(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":          "Delivery settings updated successfully.",
		"hasDelivery":      establishment.HasDelivery,
		"deliveryFee":      establishment.DeliveryFee,
		"minDeliveryOrder": establishment.MinDeliveryOrder,
		"deliveryRadius":   establishment.DeliveryRadius,
	})
}
