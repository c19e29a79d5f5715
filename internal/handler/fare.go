package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cityguide/internal/domain"
	"cityguide/internal/service"
)

// FareHandler handles HTTP requests for fare estimates.
type FareHandler struct {
	fareService *service.FareService
}

// NewFareHandler creates a new FareHandler.
func NewFareHandler(fareService *service.FareService) *FareHandler {
	return &FareHandler{fareService: fareService}
}

// EstimateFareRequest is the HTTP request body for a fare estimate.
type EstimateFareRequest struct {
	Pickup      domain.Coordinate `json:"pickup" binding:"required"`
	Destination domain.Coordinate `json:"destination" binding:"required"`
}

// TierChargeResponse is one itemized tier line of a breakdown.
type TierChargeResponse struct {
	Tier       string  `json:"tier"`
	Km         float64 `json:"km"`
	PricePerKm float64 `json:"price_per_km"`
	Subtotal   float64 `json:"subtotal"`
}

// EstimateFareResponse is the HTTP response for a fare estimate.
type EstimateFareResponse struct {
	ID             string               `json:"id"`
	DistanceKm     float64              `json:"distance_km"`
	DurationS      float64              `json:"duration_s"`
	Geometry       any                  `json:"geometry,omitempty"`
	TariffID       string               `json:"tariff_id"`
	TariffName     string               `json:"tariff_name"`
	TariffIcon     string               `json:"tariff_icon"`
	BaseFare       float64              `json:"base_fare"`
	DistanceCharge float64              `json:"distance_charge"`
	TotalPrice     float64              `json:"total_price"`
	TierCharges    []TierChargeResponse `json:"tier_charges"`
	CreatedAt      time.Time            `json:"created_at"`
}

// EstimateFare handles POST /v1/fare/estimates
func (h *FareHandler) EstimateFare(c *gin.Context) {
	var req EstimateFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	estimate, err := h.fareService.EstimateFare(c.Request.Context(), service.EstimateFareRequest{
		Pickup:      req.Pickup,
		Destination: req.Destination,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	breakdown := estimate.Breakdown
	response := EstimateFareResponse{
		ID:             estimate.ID,
		DistanceKm:     estimate.Route.DistanceKm,
		DurationS:      estimate.Route.DurationS,
		TariffID:       breakdown.TariffID,
		TariffName:     breakdown.TariffName,
		TariffIcon:     breakdown.TariffIcon,
		BaseFare:       breakdown.BaseFare,
		DistanceCharge: breakdown.DistanceCharge,
		TotalPrice:     breakdown.TotalPrice,
		TierCharges:    make([]TierChargeResponse, 0, len(breakdown.TierCharges)),
		CreatedAt:      estimate.CreatedAt,
	}
	if len(estimate.Route.Geometry) > 0 {
		response.Geometry = estimate.Route.Geometry
	}
	for _, tc := range breakdown.TierCharges {
		response.TierCharges = append(response.TierCharges, TierChargeResponse{
			Tier:       tc.Tier,
			Km:         tc.Km,
			PricePerKm: tc.PricePerKm,
			Subtotal:   tc.Subtotal,
		})
	}

	respondJSON(c, http.StatusCreated, response)
}
