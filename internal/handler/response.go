package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cityguide/internal/fare"
	"cityguide/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidPickupLocation),
		errors.Is(err, service.ErrInvalidDestinationLocation),
		errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, fare.ErrNegativeDistance):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrRouteNotFound):
		return http.StatusNotFound

	// Upstream failures
	case errors.Is(err, service.ErrRoutingUnavailable),
		errors.Is(err, service.ErrVenueDataUnavailable),
		errors.Is(err, service.ErrEventDataUnavailable),
		errors.Is(err, service.ErrGeocodingUnavailable):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
