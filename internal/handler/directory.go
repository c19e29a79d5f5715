package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cityguide/internal/domain"
	"cityguide/internal/service"
)

// DirectoryHandler serves the static city directory endpoints.
type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// ListWifiSpots handles GET /v1/wifi
//
// With lat/lon query parameters the hotspots are ordered nearest first.
func (h *DirectoryHandler) ListWifiSpots(c *gin.Context) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lon must both be valid numbers"})
			return
		}

		spots, err := h.directoryService.WifiSpotsNear(domain.Coordinate{Lat: lat, Lng: lon})
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, gin.H{"wifi_spots": spots, "count": len(spots)})
		return
	}

	spots := h.directoryService.WifiSpots()
	respondJSON(c, http.StatusOK, gin.H{"wifi_spots": spots, "count": len(spots)})
}

// ListTaxiCompanies handles GET /v1/taxi/companies
func (h *DirectoryHandler) ListTaxiCompanies(c *gin.Context) {
	companies := h.directoryService.TaxiCompanies()
	respondJSON(c, http.StatusOK, gin.H{"companies": companies, "count": len(companies)})
}
