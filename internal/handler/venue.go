package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cityguide/internal/domain"
	"cityguide/internal/service"
)

const defaultNearbyRadiusKm = 1.5

// VenueHandler handles HTTP requests for nightlife venues.
type VenueHandler struct {
	venueService *service.VenueService
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(venueService *service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// ListNightlife handles GET /v1/venues/nightlife
//
// With lat/lon query parameters the listing is ordered nearest first and
// limited to radius_km (default 1.5).
func (h *VenueHandler) ListNightlife(c *gin.Context) {
	ctx := c.Request.Context()

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lon must both be valid numbers"})
			return
		}

		radiusKm := defaultNearbyRadiusKm
		if r := c.Query("radius_km"); r != "" {
			parsed, err := strconv.ParseFloat(r, 64)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "radius_km must be a positive number"})
				return
			}
			radiusKm = parsed
		}

		venues, err := h.venueService.Nearby(ctx, domain.Coordinate{Lat: lat, Lng: lon}, radiusKm)
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, gin.H{"venues": venues, "count": len(venues)})
		return
	}

	venues, err := h.venueService.ListNightlife(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"venues": venues, "count": len(venues)})
}

// NightlifeGeoJSON handles GET /v1/venues/nightlife/geojson
func (h *VenueHandler) NightlifeGeoJSON(c *gin.Context) {
	collection, err := h.venueService.GeoJSON(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", collection)
}
