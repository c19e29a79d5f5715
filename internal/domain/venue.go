package domain

// VenueType classifies a nightlife venue by its OSM amenity tag.
type VenueType string

const (
	VenueTypeBar       VenueType = "bar"
	VenueTypePub       VenueType = "pub"
	VenueTypeNightclub VenueType = "nightclub"
)

// Venue is a nightlife venue sourced from OpenStreetMap. The system adds
// no identity or mutation beyond display formatting; lifetime is bounded
// by the cache TTL.
type Venue struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         VenueType  `json:"type"`
	Location     Coordinate `json:"location"`
	OpeningHours string     `json:"opening_hours,omitempty"`
	Intensity    float64    `json:"intensity"` // heatmap weight: nightclub 3, pub 1.5, bar 1
}
