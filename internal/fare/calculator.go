package fare

import (
	"fmt"
	"math"
	"time"

	"cityguide/internal/domain"
	"cityguide/internal/tariff"
)

// Calculator computes tiered fare breakdowns. It is pure and
// deterministic for a given (distance, instant) pair and safe for
// concurrent use.
type Calculator struct {
	table    *tariff.Table
	schedule tariff.Schedule
	now      func() time.Time
}

// NewCalculator creates a Calculator over the given tariff table and
// weekly schedule.
func NewCalculator(table *tariff.Table, schedule tariff.Schedule) *Calculator {
	return &Calculator{
		table:    table,
		schedule: schedule,
		now:      time.Now,
	}
}

// SetClock replaces the wall clock. Used by tests to pin the tariff
// selection to a known instant.
func (c *Calculator) SetClock(now func() time.Time) {
	c.now = now
}

// Quote computes the fare for a distance using the current time for
// tariff selection.
func (c *Calculator) Quote(distanceKm float64) (*domain.PriceBreakdown, error) {
	return c.QuoteAt(distanceKm, c.now())
}

// QuoteAt computes the fare for a distance with the tariff applicable at
// the given instant.
func (c *Calculator) QuoteAt(distanceKm float64, at time.Time) (*domain.PriceBreakdown, error) {
	if distanceKm < 0 {
		return nil, fmt.Errorf("%w: %.2f km", ErrNegativeDistance, distanceKm)
	}

	id := c.schedule.TariffFor(at)
	t, ok := c.table.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTariff, id)
	}

	charges, rawDistanceCharge := walkTiers(distanceKm, t.DistancePricing)

	// Tier subtotals are rounded independently for display; the distance
	// charge is rounded after summation to avoid compounding error. The
	// grand total is the rounded sum of the rounded components.
	roundedBase := round2(t.BaseFare)
	total := roundedBase
	for _, ch := range charges {
		total += ch.Subtotal
	}

	return &domain.PriceBreakdown{
		TariffID:       t.ID,
		TariffName:     t.Name,
		TariffIcon:     t.Icon,
		BaseFare:       roundedBase,
		DistanceCharge: round2(rawDistanceCharge),
		TotalPrice:     round2(total),
		DistanceKm:     distanceKm,
		TierCharges:    charges,
	}, nil
}

// walkTiers consumes the distance tier by tier in ascending order and
// returns the per-tier charges plus the unrounded distance total.
func walkTiers(distanceKm float64, tiers []domain.DistanceTier) ([]domain.TierCharge, float64) {
	charges := make([]domain.TierCharge, 0, len(tiers))
	remaining := distanceKm
	total := 0.0

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		inTier := remaining
		if !tier.Unbounded() {
			if width := tier.Width(); inTier > width {
				inTier = width
			}
		}
		if inTier <= 0 {
			continue
		}

		subtotal := inTier * tier.PricePerKm
		charges = append(charges, domain.TierCharge{
			Tier:       tierLabel(tier),
			Km:         round2(inTier),
			PricePerKm: tier.PricePerKm,
			Subtotal:   round2(subtotal),
		})
		total += subtotal
		remaining -= inTier
	}

	return charges, total
}

func tierLabel(t domain.DistanceTier) string {
	if t.Unbounded() {
		return fmt.Sprintf(">%s km", trimFloat(t.FromKm))
	}
	return fmt.Sprintf("%s-%s km", trimFloat(t.FromKm), trimFloat(*t.ToKm))
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
