package controllers

import (
	"net/http"

	"github.com/bekosher/bekosher-api/services"
	"github.com/gin-gonic/gin"
)

type HoursController struct {
	hours HoursService
}

func NewHoursController(hours HoursService) *HoursController {
	return &HoursController{hours: hours}
}

func (c *HoursController) GetOperatingHours(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	hours, err := c.hours.OperatingHours(ctx.Request.Context(), caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"operatingHours": hours})
}

func (c *HoursController) ReplaceOperatingHours(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.HoursInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}
	hours, err := c.hours.ReplaceOperatingHours(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":        "Operating hours updated successfully.",
		"operatingHours": hours,
	})
}

func (c *HoursController) GetDeliveryHours(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	hours, err := c.hours.DeliveryHours(ctx.Request.Context(), caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"deliveryHours": hours})
}

func (c *HoursController) ReplaceDeliveryHours(ctx *gin.Context) {
	caller, ok := currentActor(ctx)
	if !ok {
		return
	}
	var input services.HoursInput
	if err := bindJSON(ctx, &input); err != nil {
		respondWithError(ctx, err)
		return
	}
	hours, err := c.hours.ReplaceDeliveryHours(ctx.Request.Context(), caller, input)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":       "Delivery hours updated successfully.",
		"deliveryHours": hours,
	})
}
