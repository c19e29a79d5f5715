package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"cityguide/internal/client/events"
	"cityguide/internal/domain"
	"cityguide/internal/service"
)

// ──────────────────────────────────────────────
// 3. EVENT LISTING
// ──────────────────────────────────────────────

func TestUpcomingEvents_GeocodesVenuesWithoutCoordinates(t *testing.T) {
	t.Parallel()

	lister := NewMockEventLister()
	lister.EventList = []domain.Event{
		{
			ID:    1,
			Title: "Weinfest",
			Venue: domain.EventVenue{Name: "Stephansplatz", City: "Konstanz"},
		},
		{
			ID:    2,
			Title: "Konzert",
			Venue: domain.EventVenue{
				Name:     "Kulturladen",
				Location: &domain.Coordinate{Lat: 47.668, Lng: 9.168},
			},
		},
	}

	geocoder := NewMockGeocoder()
	geocoder.Results = []domain.AddressResult{
		{Location: domain.Coordinate{Lat: 47.6629, Lng: 9.1753}},
	}

	eventService := service.NewEventService(lister, geocoder, nil)

	listed, err := eventService.Upcoming(context.Background(), events.Params{Page: 1})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 events, got %d", len(listed))
	}

	if listed[0].Venue.Location == nil {
		t.Fatal("expected geocoded location for venue without coordinates")
	}
	if listed[0].Venue.Location.Lat != 47.6629 {
		t.Errorf("expected geocoded latitude 47.6629, got %v", listed[0].Venue.Location.Lat)
	}

	// Venues that already carry coordinates are left alone.
	if got := atomic.LoadInt32(&geocoder.SearchCallCount); got != 1 {
		t.Errorf("expected 1 geocoder call, got %d", got)
	}
	if listed[1].Venue.Location.Lat != 47.668 {
		t.Errorf("expected original latitude 47.668, got %v", listed[1].Venue.Location.Lat)
	}
}

func TestUpcomingEvents_GeocoderFailure_IsIgnored(t *testing.T) {
	t.Parallel()

	lister := NewMockEventLister()
	lister.EventList = []domain.Event{
		{ID: 1, Title: "Weinfest", Venue: domain.EventVenue{Name: "Stephansplatz"}},
	}
	geocoder := NewMockGeocoder()
	geocoder.SearchError = errors.New("photon down")

	eventService := service.NewEventService(lister, geocoder, nil)

	listed, err := eventService.Upcoming(context.Background(), events.Params{})
	if err != nil {
		t.Fatalf("expected event listing despite geocoder failure, got: %v", err)
	}
	if listed[0].Venue.Location != nil {
		t.Error("expected venue location to stay unset")
	}
}

func TestUpcomingEvents_CachesPerQuery(t *testing.T) {
	t.Parallel()

	lister := NewMockEventLister()
	lister.EventList = []domain.Event{{ID: 1, Title: "Weinfest"}}
	cache := NewMockCacheStore()

	eventService := service.NewEventService(lister, nil, cache)

	params := events.Params{Page: 1, PerPage: 20}
	if _, err := eventService.Upcoming(context.Background(), params); err != nil {
		t.Fatalf("first listing: %v", err)
	}
	if _, err := eventService.Upcoming(context.Background(), params); err != nil {
		t.Fatalf("second listing: %v", err)
	}

	if got := atomic.LoadInt32(&lister.UpcomingCallCount); got != 1 {
		t.Errorf("expected 1 upstream call for identical queries, got %d", got)
	}

	// A different query misses the cache.
	if _, err := eventService.Upcoming(context.Background(), events.Params{Page: 2, PerPage: 20}); err != nil {
		t.Fatalf("third listing: %v", err)
	}
	if got := atomic.LoadInt32(&lister.UpcomingCallCount); got != 2 {
		t.Errorf("expected 2 upstream calls, got %d", got)
	}
}

func TestUpcomingEvents_UpstreamDown_Fails(t *testing.T) {
	t.Parallel()

	lister := NewMockEventLister()
	lister.UpcomingError = errors.New("wordpress down")

	eventService := service.NewEventService(lister, nil, nil)

	_, err := eventService.Upcoming(context.Background(), events.Params{})
	if !errors.Is(err, service.ErrEventDataUnavailable) {
		t.Errorf("expected ErrEventDataUnavailable, got: %v", err)
	}
}
