package service

import (
	"math"
	"sort"

	"cityguide/internal/domain"
)

// DirectoryService serves the static city directory: public WiFi
// hotspots and taxi dispatch companies. The data is fixed at build time.
type DirectoryService struct {
	wifiSpots []domain.WifiSpot
	companies []domain.TaxiCompany
}

// NewDirectoryService creates a DirectoryService over the built-in data.
func NewDirectoryService() *DirectoryService {
	return &DirectoryService{
		wifiSpots: wifiSpots,
		companies: taxiCompanies,
	}
}

// WifiSpots returns all public WiFi hotspots.
func (s *DirectoryService) WifiSpots() []domain.WifiSpot {
	out := make([]domain.WifiSpot, len(s.wifiSpots))
	copy(out, s.wifiSpots)
	return out
}

// WifiSpotsNear returns all hotspots ordered by distance from the given
// point, nearest first.
func (s *DirectoryService) WifiSpotsNear(loc domain.Coordinate) ([]domain.WifiSpot, error) {
	if !loc.Valid() {
		return nil, ErrInvalidLocation
	}

	out := s.WifiSpots()
	sort.SliceStable(out, func(i, j int) bool {
		return haversineKm(loc, out[i].Location) < haversineKm(loc, out[j].Location)
	})
	return out, nil
}

// TaxiCompanies returns the taxi company directory.
func (s *DirectoryService) TaxiCompanies() []domain.TaxiCompany {
	out := make([]domain.TaxiCompany, len(s.companies))
	copy(out, s.companies)
	return out
}

const earthRadiusKm = 6371.0

// haversineKm computes the great-circle distance between two points.
func haversineKm(a, b domain.Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
