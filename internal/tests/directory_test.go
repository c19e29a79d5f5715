package tests

import (
	"errors"
	"testing"

	"cityguide/internal/domain"
	"cityguide/internal/service"
)

// ──────────────────────────────────────────────
// 4. CITY DIRECTORY
// ──────────────────────────────────────────────

func TestWifiSpots_ReturnsAllSpots(t *testing.T) {
	t.Parallel()

	directoryService := service.NewDirectoryService()

	spots := directoryService.WifiSpots()
	if len(spots) == 0 {
		t.Fatal("expected built-in wifi spots")
	}
	for _, s := range spots {
		if !s.Location.Valid() {
			t.Errorf("spot %s has invalid coordinates", s.ID)
		}
	}
}

func TestWifiSpotsNear_OrdersByDistance(t *testing.T) {
	t.Parallel()

	directoryService := service.NewDirectoryService()

	// Standing at the ferry pier in Staad, the two ferry hotspots must
	// rank ahead of the old town ones.
	spots, err := directoryService.WifiSpotsNear(domain.Coordinate{Lat: 47.6822, Lng: 9.2112})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if spots[0].ID != "RCK-APT300-15" {
		t.Errorf("expected ferry hotspot first, got %s", spots[0].ID)
	}
}

func TestWifiSpotsNear_InvalidLocation_Fails(t *testing.T) {
	t.Parallel()

	directoryService := service.NewDirectoryService()

	_, err := directoryService.WifiSpotsNear(domain.Coordinate{Lat: -100, Lng: 0})
	if !errors.Is(err, service.ErrInvalidLocation) {
		t.Errorf("expected ErrInvalidLocation, got: %v", err)
	}
}

func TestTaxiCompanies_HavePhoneNumbers(t *testing.T) {
	t.Parallel()

	directoryService := service.NewDirectoryService()

	companies := directoryService.TaxiCompanies()
	if len(companies) == 0 {
		t.Fatal("expected built-in taxi companies")
	}
	for _, c := range companies {
		if c.Name == "" || c.Phone == "" {
			t.Errorf("company %+v missing name or phone", c)
		}
	}
}
