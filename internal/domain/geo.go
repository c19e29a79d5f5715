package domain

import "encoding/json"

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is within WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Route is a driving route returned by the routing upstream.
type Route struct {
	DistanceKm float64         `json:"distance_km"`
	DurationS  float64         `json:"duration_s"`
	Geometry   json.RawMessage `json:"geometry,omitempty"` // GeoJSON LineString, passed through for map rendering
}
