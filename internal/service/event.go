package service

import (
	"context"
	"fmt"
	"strings"

	"cityguide/internal/client/events"
	"cityguide/internal/client/photon"
	"cityguide/internal/domain"
	"cityguide/internal/redis"
)

// EventLister fetches events from the events upstream.
type EventLister interface {
	Upcoming(ctx context.Context, params events.Params) ([]domain.Event, error)
}

// EventService serves local events. Listings are cached per query, and
// venues without coordinates get a best-effort geocoding lookup so they
// can still be placed on the map.
type EventService struct {
	lister   EventLister
	geocoder Geocoder
	cache    redis.CacheStoreInterface
}

// NewEventService creates a new EventService. geocoder and cache may be
// nil.
func NewEventService(lister EventLister, geocoder Geocoder, cache redis.CacheStoreInterface) *EventService {
	return &EventService{
		lister:   lister,
		geocoder: geocoder,
		cache:    cache,
	}
}

// Upcoming lists events matching the given filters.
func (s *EventService) Upcoming(ctx context.Context, params events.Params) ([]domain.Event, error) {
	key := params.CacheKey()

	if s.cache != nil {
		if cached, err := s.cache.GetEvents(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	listed, err := s.lister.Upcoming(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventDataUnavailable, err)
	}

	s.locateVenues(ctx, listed)

	if s.cache != nil {
		_ = s.cache.SetEvents(ctx, key, listed)
	}
	return listed, nil
}

// locateVenues fills in missing venue coordinates via the geocoder.
// Failures are ignored; the event is still listed, just not mappable.
func (s *EventService) locateVenues(ctx context.Context, listed []domain.Event) {
	if s.geocoder == nil {
		return
	}

	for i := range listed {
		venue := &listed[i].Venue
		if venue.Location != nil {
			continue
		}

		query := strings.TrimSpace(strings.Join(nonEmpty(venue.Name, venue.Address, venue.City), ", "))
		if len(query) < photon.MinQueryLength {
			continue
		}

		results, err := s.geocoder.Search(ctx, photon.SearchParams{Query: query, Limit: 1})
		if err != nil || len(results) == 0 {
			continue
		}
		loc := results[0].Location
		venue.Location = &loc
	}
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
