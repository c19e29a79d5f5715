package tariff

import "cityguide/internal/domain"

func km(v float64) *float64 { return &v }

// DefaultTable returns the built-in tariff table, used when no tariff
// config file is supplied. Day: base 3.00, first 5 km at 3.00/km, then
// 2.80/km. Night: base 3.50, first 5 km at 3.30/km, then 3.10/km.
func DefaultTable() *Table {
	table, err := NewTable([]domain.Tariff{
		{
			ID:       "day",
			Name:     "Day Tariff",
			Icon:     "☀️",
			BaseFare: 3.00,
			DistancePricing: []domain.DistanceTier{
				{FromKm: 0, ToKm: km(5), PricePerKm: 3.00},
				{FromKm: 5, ToKm: nil, PricePerKm: 2.80},
			},
		},
		{
			ID:       "night",
			Name:     "Night Tariff",
			Icon:     "🌙",
			BaseFare: 3.50,
			DistancePricing: []domain.DistanceTier{
				{FromKm: 0, ToKm: km(5), PricePerKm: 3.30},
				{FromKm: 5, ToKm: nil, PricePerKm: 3.10},
			},
		},
	})
	if err != nil {
		// The built-in table is a compile-time constant; a validation
		// failure here is a programming error.
		panic(err)
	}
	return table
}
