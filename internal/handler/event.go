package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cityguide/internal/client/events"
	"cityguide/internal/service"
)

const (
	defaultEventsPerPage = 20
	maxEventsPerPage     = 50
)

// EventHandler handles HTTP requests for local events.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles GET /v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	params := events.Params{
		Page:      1,
		PerPage:   defaultEventsPerPage,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Search:    c.Query("search"),
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page must be a positive integer"})
			return
		}
		params.Page = page
	}

	if perPageStr := c.Query("per_page"); perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil || perPage < 1 || perPage > maxEventsPerPage {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "per_page must be between 1 and 50"})
			return
		}
		params.PerPage = perPage
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "featured must be true or false"})
			return
		}
		params.Featured = featured
	}

	listed, err := h.eventService.Upcoming(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{
		"events": listed,
		"count":  len(listed),
		"page":   params.Page,
	})
}
