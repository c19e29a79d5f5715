package tariff

import (
	"testing"

	"cityguide/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewTable_ValidTariffs_Succeeds(t *testing.T) {
	t.Parallel()

	table, err := NewTable([]domain.Tariff{
		{
			ID:       "day",
			Name:     "Day",
			BaseFare: 3.00,
			DistancePricing: []domain.DistanceTier{
				{FromKm: 0, ToKm: floatPtr(5), PricePerKm: 3.00},
				{FromKm: 5, ToKm: nil, PricePerKm: 2.80},
			},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, ok := table.Get("day"); !ok {
		t.Error("expected tariff 'day' to be present")
	}
	if _, ok := table.Get("missing"); ok {
		t.Error("expected tariff 'missing' to be absent")
	}
}

func TestNewTable_InvalidTariffs_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		tariffs []domain.Tariff
	}{
		{
			name:    "empty table",
			tariffs: nil,
		},
		{
			name: "empty tariff id",
			tariffs: []domain.Tariff{
				{ID: "", DistancePricing: []domain.DistanceTier{{FromKm: 0, PricePerKm: 1}}},
			},
		},
		{
			name: "duplicate tariff id",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{{FromKm: 0, PricePerKm: 1}}},
				{ID: "day", DistancePricing: []domain.DistanceTier{{FromKm: 0, PricePerKm: 1}}},
			},
		},
		{
			name: "no distance tiers",
			tariffs: []domain.Tariff{
				{ID: "day", BaseFare: 3.00},
			},
		},
		{
			name: "first tier does not start at zero",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{
					{FromKm: 1, ToKm: floatPtr(5), PricePerKm: 1},
				}},
			},
		},
		{
			name: "gap between tiers",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{
					{FromKm: 0, ToKm: floatPtr(5), PricePerKm: 1},
					{FromKm: 6, ToKm: nil, PricePerKm: 1},
				}},
			},
		},
		{
			name: "overlapping tiers",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{
					{FromKm: 0, ToKm: floatPtr(5), PricePerKm: 1},
					{FromKm: 4, ToKm: nil, PricePerKm: 1},
				}},
			},
		},
		{
			name: "unbounded tier not last",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{
					{FromKm: 0, ToKm: nil, PricePerKm: 1},
					{FromKm: 5, ToKm: floatPtr(10), PricePerKm: 1},
				}},
			},
		},
		{
			name: "empty tier range",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{
					{FromKm: 0, ToKm: floatPtr(0), PricePerKm: 1},
				}},
			},
		},
		{
			name: "negative base fare",
			tariffs: []domain.Tariff{
				{ID: "day", BaseFare: -1, DistancePricing: []domain.DistanceTier{
					{FromKm: 0, PricePerKm: 1},
				}},
			},
		},
		{
			name: "negative per-km rate",
			tariffs: []domain.Tariff{
				{ID: "day", DistancePricing: []domain.DistanceTier{
					{FromKm: 0, PricePerKm: -1},
				}},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewTable(tc.tariffs); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestDefaultTable_ContainsDayAndNight(t *testing.T) {
	t.Parallel()

	table := DefaultTable()

	day, ok := table.Get("day")
	if !ok {
		t.Fatal("expected day tariff")
	}
	if day.BaseFare != 3.00 {
		t.Errorf("expected day base fare 3.00, got %.2f", day.BaseFare)
	}

	night, ok := table.Get("night")
	if !ok {
		t.Fatal("expected night tariff")
	}
	if night.BaseFare != 3.50 {
		t.Errorf("expected night base fare 3.50, got %.2f", night.BaseFare)
	}

	if got := len(table.All()); got != 2 {
		t.Errorf("expected 2 tariffs, got %d", got)
	}
}
