package domain

// Tariff is a named pricing policy: a base fare plus an ordered list of
// distance tiers. Tariff tables are loaded once at startup and are
// immutable afterwards.
type Tariff struct {
	ID              string
	Name            string
	Icon            string
	BaseFare        float64
	DistancePricing []DistanceTier
}

// DistanceTier is a contiguous kilometer range billed at a fixed per-km rate.
// FromKm is inclusive, ToKm is exclusive. A nil ToKm means the tier is
// unbounded; only the final tier may be unbounded.
type DistanceTier struct {
	FromKm     float64
	ToKm       *float64
	PricePerKm float64
}

// Width returns the kilometer span covered by the tier, or -1 for an
// unbounded tier.
func (t DistanceTier) Width() float64 {
	if t.ToKm == nil {
		return -1
	}
	return *t.ToKm - t.FromKm
}

// Unbounded reports whether the tier has no upper limit.
func (t DistanceTier) Unbounded() bool {
	return t.ToKm == nil
}
