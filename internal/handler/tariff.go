package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"cityguide/internal/domain"
	"cityguide/internal/tariff"
)

// TariffHandler exposes the tariff table and schedule.
type TariffHandler struct {
	table    *tariff.Table
	schedule tariff.Schedule
	now      func() time.Time
}

// NewTariffHandler creates a new TariffHandler.
func NewTariffHandler(table *tariff.Table, schedule tariff.Schedule) *TariffHandler {
	return &TariffHandler{table: table, schedule: schedule, now: time.Now}
}

// TierResponse is one distance tier of a tariff.
type TierResponse struct {
	FromKm     float64  `json:"from_km"`
	ToKm       *float64 `json:"to_km"`
	PricePerKm float64  `json:"price_per_km"`
}

// TariffResponse is one tariff of the table.
type TariffResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Icon     string         `json:"icon"`
	BaseFare float64        `json:"base_fare"`
	Tiers    []TierResponse `json:"tiers"`
	Active   bool           `json:"active"`
}

// ListTariffs handles GET /v1/tariffs
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	activeID := h.schedule.TariffFor(h.now())

	tariffs := h.table.All()
	sort.Slice(tariffs, func(i, j int) bool { return tariffs[i].ID < tariffs[j].ID })

	response := make([]TariffResponse, 0, len(tariffs))
	for _, t := range tariffs {
		response = append(response, toTariffResponse(t, t.ID == activeID))
	}

	respondJSON(c, http.StatusOK, gin.H{"tariffs": response, "active_tariff_id": activeID})
}

func toTariffResponse(t domain.Tariff, active bool) TariffResponse {
	tiers := make([]TierResponse, 0, len(t.DistancePricing))
	for _, tier := range t.DistancePricing {
		tiers = append(tiers, TierResponse{
			FromKm:     tier.FromKm,
			ToKm:       tier.ToKm,
			PricePerKm: tier.PricePerKm,
		})
	}
	return TariffResponse{
		ID:       t.ID,
		Name:     t.Name,
		Icon:     t.Icon,
		BaseFare: t.BaseFare,
		Tiers:    tiers,
		Active:   active,
	}
}
