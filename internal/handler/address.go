package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cityguide/internal/client/photon"
	"cityguide/internal/service"
)

const maxAddressResults = 25

// AddressHandler handles HTTP requests for address autocomplete.
type AddressHandler struct {
	addressService *service.AddressService
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// Search handles GET /v1/addresses/search?q=...&limit=...&lat=...&lon=...&lang=...
func (h *AddressHandler) Search(c *gin.Context) {
	params := photon.SearchParams{
		Query: c.Query("q"),
		Lang:  c.Query("lang"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxAddressResults {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be between 1 and 25"})
			return
		}
		params.Limit = limit
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" && lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lon must be valid numbers"})
			return
		}
		params.Lat, params.Lng = lat, lon
	}

	results, err := h.addressService.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"results": results, "count": len(results)})
}
