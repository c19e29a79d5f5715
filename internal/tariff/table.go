package tariff

import (
	"encoding/json"
	"fmt"
	"os"

	"cityguide/internal/domain"
)

// Table maps tariff identifiers to their pricing policies. It is built
// once at startup, validated, and immutable afterwards.
type Table struct {
	tariffs map[string]domain.Tariff
}

// NewTable builds a table from the given tariffs and validates the tier
// invariants. Malformed configurations are rejected here, at startup,
// rather than surfacing at the first fare computation.
func NewTable(tariffs []domain.Tariff) (*Table, error) {
	if len(tariffs) == 0 {
		return nil, fmt.Errorf("tariff table is empty")
	}

	byID := make(map[string]domain.Tariff, len(tariffs))
	for _, t := range tariffs {
		if t.ID == "" {
			return nil, fmt.Errorf("tariff with empty id")
		}
		if _, exists := byID[t.ID]; exists {
			return nil, fmt.Errorf("duplicate tariff %q", t.ID)
		}
		if err := validateTariff(t); err != nil {
			return nil, fmt.Errorf("tariff %q: %w", t.ID, err)
		}
		byID[t.ID] = t
	}

	return &Table{tariffs: byID}, nil
}

// Get returns the tariff for the given identifier.
func (t *Table) Get(id string) (domain.Tariff, bool) {
	tariff, ok := t.tariffs[id]
	return tariff, ok
}

// All returns every tariff in the table.
func (t *Table) All() []domain.Tariff {
	out := make([]domain.Tariff, 0, len(t.tariffs))
	for _, tariff := range t.tariffs {
		out = append(out, tariff)
	}
	return out
}

// validateTariff enforces the tier invariants: tiers are contiguous and
// non-overlapping, start at 0, and at most the final tier is unbounded.
func validateTariff(t domain.Tariff) error {
	if t.BaseFare < 0 {
		return fmt.Errorf("negative base fare %.2f", t.BaseFare)
	}
	if len(t.DistancePricing) == 0 {
		return fmt.Errorf("no distance tiers")
	}

	expectedFrom := 0.0
	for i, tier := range t.DistancePricing {
		if tier.PricePerKm < 0 {
			return fmt.Errorf("tier %d: negative rate %.2f", i, tier.PricePerKm)
		}
		if tier.FromKm != expectedFrom {
			return fmt.Errorf("tier %d: starts at %.2f km, want %.2f km", i, tier.FromKm, expectedFrom)
		}
		if tier.ToKm == nil {
			if i != len(t.DistancePricing)-1 {
				return fmt.Errorf("tier %d: unbounded tier must be last", i)
			}
			return nil
		}
		if *tier.ToKm <= tier.FromKm {
			return fmt.Errorf("tier %d: upper bound %.2f km not above %.2f km", i, *tier.ToKm, tier.FromKm)
		}
		expectedFrom = *tier.ToKm
	}
	return nil
}

// tariffFile mirrors the JSON configuration shape:
// { "tariffs": { id: { name, icon, baseFare, distancePricing: [...] } } }
type tariffFile struct {
	Tariffs map[string]struct {
		Name            string  `json:"name"`
		Icon            string  `json:"icon"`
		BaseFare        float64 `json:"baseFare"`
		DistancePricing []struct {
			FromKm     float64  `json:"fromKm"`
			ToKm       *float64 `json:"toKm"`
			PricePerKm float64  `json:"pricePerKm"`
		} `json:"distancePricing"`
	} `json:"tariffs"`
}

// LoadTable reads a tariff table from a JSON file and validates it.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tariff config: %w", err)
	}

	var file tariffFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tariff config: %w", err)
	}

	tariffs := make([]domain.Tariff, 0, len(file.Tariffs))
	for id, entry := range file.Tariffs {
		t := domain.Tariff{
			ID:       id,
			Name:     entry.Name,
			Icon:     entry.Icon,
			BaseFare: entry.BaseFare,
		}
		for _, tier := range entry.DistancePricing {
			t.DistancePricing = append(t.DistancePricing, domain.DistanceTier{
				FromKm:     tier.FromKm,
				ToKm:       tier.ToKm,
				PricePerKm: tier.PricePerKm,
			})
		}
		tariffs = append(tariffs, t)
	}

	return NewTable(tariffs)
}
