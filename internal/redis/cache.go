package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"cityguide/internal/domain"
)

// CacheStore caches upstream API responses in Redis. Cache failures are
// treated as misses by callers so the service degrades to direct
// upstream calls.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	VenueCacheTTL = 10 * time.Minute // venue set and opening hours change rarely
	RouteCacheTTL = 5 * time.Minute  // routes are stable but traffic-dependent
	EventCacheTTL = 10 * time.Minute
)

// Key prefixes
const (
	venueCacheKey    = "cache:venues:nightlife"
	venueStaleKey    = "cache:venues:nightlife:stale"
	routeCachePrefix = "cache:route:"
	eventCachePrefix = "cache:events:"
)

// GetVenues retrieves the cached venue listing. A nil slice with nil
// error is a cache miss.
func (s *CacheStore) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.getVenues(ctx, venueCacheKey)
}

// GetStaleVenues retrieves the last known venue listing regardless of
// freshness. Used when every upstream endpoint is down.
func (s *CacheStore) GetStaleVenues(ctx context.Context) ([]domain.Venue, error) {
	return s.getVenues(ctx, venueStaleKey)
}

func (s *CacheStore) getVenues(ctx context.Context, key string) ([]domain.Venue, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

// SetVenues stores the venue listing, both as a fresh entry and as a
// stale copy without expiry.
func (s *CacheStore) SetVenues(ctx context.Context, venues []domain.Venue) error {
	data, err := json.Marshal(venues)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, venueCacheKey, data, VenueCacheTTL).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, venueStaleKey, data, 0).Err()
}

// GetRoute retrieves a cached route for a coordinate pair key.
func (s *CacheStore) GetRoute(ctx context.Context, key string) (*domain.Route, error) {
	data, err := s.client.Get(ctx, routeCachePrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// SetRoute stores a route under a coordinate pair key.
func (s *CacheStore) SetRoute(ctx context.Context, key string, route *domain.Route) error {
	data, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, routeCachePrefix+key, data, RouteCacheTTL).Err()
}

// GetEvents retrieves a cached event listing for a query key.
func (s *CacheStore) GetEvents(ctx context.Context, key string) ([]domain.Event, error) {
	data, err := s.client.Get(ctx, eventCachePrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SetEvents stores an event listing under a query key.
func (s *CacheStore) SetEvents(ctx context.Context, key string, events []domain.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, eventCachePrefix+key, data, EventCacheTTL).Err()
}
