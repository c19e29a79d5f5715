package fare

import (
	"errors"
	"math"
	"testing"
	"time"

	"cityguide/internal/tariff"
)

// 2024-01-01 is a Monday; noon selects the day tariff, 23:00 the night
// tariff.
var (
	mondayNoon  = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mondayNight = time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
)

func newCalculator(t *testing.T) *Calculator {
	t.Helper()
	return NewCalculator(tariff.DefaultTable(), tariff.DefaultSchedule())
}

func TestQuoteAt_TwoTierDayFare(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	// 7.5 km on the day tariff: 5 km at 3.00 plus 2.5 km at 2.80.
	breakdown, err := calc.QuoteAt(7.5, mondayNoon)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if breakdown.TariffID != "day" {
		t.Errorf("expected day tariff, got %q", breakdown.TariffID)
	}
	if breakdown.BaseFare != 3.00 {
		t.Errorf("expected base fare 3.00, got %.2f", breakdown.BaseFare)
	}
	if len(breakdown.TierCharges) != 2 {
		t.Fatalf("expected 2 tier charges, got %d", len(breakdown.TierCharges))
	}
	if breakdown.TierCharges[0].Subtotal != 15.00 {
		t.Errorf("expected first tier subtotal 15.00, got %.2f", breakdown.TierCharges[0].Subtotal)
	}
	if breakdown.TierCharges[1].Subtotal != 7.00 {
		t.Errorf("expected second tier subtotal 7.00, got %.2f", breakdown.TierCharges[1].Subtotal)
	}
	if breakdown.DistanceCharge != 22.00 {
		t.Errorf("expected distance charge 22.00, got %.2f", breakdown.DistanceCharge)
	}
	if breakdown.TotalPrice != 25.00 {
		t.Errorf("expected total 25.00, got %.2f", breakdown.TotalPrice)
	}
}

func TestQuoteAt_ZeroDistance_BaseFareOnly(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	breakdown, err := calc.QuoteAt(0, mondayNoon)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(breakdown.TierCharges) != 0 {
		t.Errorf("expected no tier charges, got %d", len(breakdown.TierCharges))
	}
	if breakdown.DistanceCharge != 0 {
		t.Errorf("expected distance charge 0, got %.2f", breakdown.DistanceCharge)
	}
	if breakdown.TotalPrice != 3.00 {
		t.Errorf("expected total 3.00, got %.2f", breakdown.TotalPrice)
	}
}

func TestQuoteAt_TierBoundary_StaysInLowerTier(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	// Exactly 5 km is consumed entirely by the first tier.
	breakdown, err := calc.QuoteAt(5.0, mondayNoon)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(breakdown.TierCharges) != 1 {
		t.Fatalf("expected 1 tier charge, got %d", len(breakdown.TierCharges))
	}
	if breakdown.TierCharges[0].Km != 5.0 {
		t.Errorf("expected 5.0 km in first tier, got %.2f", breakdown.TierCharges[0].Km)
	}
	if breakdown.TotalPrice != 18.00 {
		t.Errorf("expected total 18.00, got %.2f", breakdown.TotalPrice)
	}
}

func TestQuoteAt_NegativeDistance_Fails(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	_, err := calc.QuoteAt(-1.0, mondayNoon)
	if !errors.Is(err, ErrNegativeDistance) {
		t.Errorf("expected ErrNegativeDistance, got: %v", err)
	}
}

func TestQuoteAt_NightTariff(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	// 7.5 km on the night tariff: 3.50 + 5*3.30 + 2.5*3.10.
	breakdown, err := calc.QuoteAt(7.5, mondayNight)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if breakdown.TariffID != "night" {
		t.Errorf("expected night tariff, got %q", breakdown.TariffID)
	}
	if breakdown.TotalPrice != 27.75 {
		t.Errorf("expected total 27.75, got %.2f", breakdown.TotalPrice)
	}
}

func TestQuoteAt_Deterministic(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	first, err := calc.QuoteAt(12.345, mondayNoon)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := calc.QuoteAt(12.345, mondayNoon)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first.TotalPrice != second.TotalPrice {
		t.Errorf("expected identical totals, got %.2f and %.2f", first.TotalPrice, second.TotalPrice)
	}
}

func TestQuoteAt_TierKmSumMatchesDistance(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)

	for _, distance := range []float64{0.1, 1, 4.99, 5, 5.01, 7.5, 42} {
		breakdown, err := calc.QuoteAt(distance, mondayNoon)
		if err != nil {
			t.Fatalf("distance %.2f: expected no error, got: %v", distance, err)
		}

		sum := 0.0
		for _, ch := range breakdown.TierCharges {
			sum += ch.Km
		}
		if math.Abs(sum-distance) > 0.005 {
			t.Errorf("distance %.2f: tier km sum %.4f drifts from distance", distance, sum)
		}
	}
}

func TestQuote_UsesInjectedClock(t *testing.T) {
	t.Parallel()

	calc := newCalculator(t)
	calc.SetClock(func() time.Time { return mondayNight })

	breakdown, err := calc.Quote(2.0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if breakdown.TariffID != "night" {
		t.Errorf("expected night tariff via injected clock, got %q", breakdown.TariffID)
	}
}
