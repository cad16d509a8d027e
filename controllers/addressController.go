package controllers

import (
	"errors"
	"net/http"

	"github.com/bekosher/bekosher-api/utils"
	"github.com/gin-gonic/gin"
)

type AddressController struct {
	lookup AddressLookup
}

func NewAddressController(lookup AddressLookup) *AddressController {
	return &AddressController{lookup: lookup}
}

func (c *AddressController) GetAddress(ctx *gin.Context) {
	address, err := c.lookup.Lookup(ctx.Request.Context(), ctx.Param("cep"))
	switch {
	case errors.Is(err, utils.ErrInvalidCEP):
		sendErrorResponse(ctx, http.StatusBadRequest, "CEP must have 8 digits")
	case errors.Is(err, utils.ErrCEPNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "CEP not found")
	case err != nil:
		ctx.Error(err)
		sendErrorResponse(ctx, http.StatusBadGateway, "Failed to look up CEP")
	default:
		sendJSONResponse(ctx, http.StatusOK, gin.H{"address": address})
	}
}
