package domain

// TierCharge is the portion of a trip billed within a single distance tier.
type TierCharge struct {
	Tier       string  // human-readable label, e.g. "0-5 km" or ">5 km"
	Km         float64 // kilometers consumed in this tier
	PricePerKm float64
	Subtotal   float64
}

// PriceBreakdown is the itemized result of applying a tariff to a trip
// distance. It is created fresh on every fare computation and never
// persisted.
type PriceBreakdown struct {
	TariffID       string
	TariffName     string
	TariffIcon     string
	BaseFare       float64
	DistanceCharge float64
	TotalPrice     float64
	DistanceKm     float64
	TierCharges    []TierCharge
}
