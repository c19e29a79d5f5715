package redis

import (
	"context"
	"time"

	"cityguide/internal/domain"
)

// CacheStoreInterface defines the interface for upstream response caching.
type CacheStoreInterface interface {
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	GetStaleVenues(ctx context.Context) ([]domain.Venue, error)
	SetVenues(ctx context.Context, venues []domain.Venue) error
	GetRoute(ctx context.Context, key string) (*domain.Route, error)
	SetRoute(ctx context.Context, key string, route *domain.Route) error
	GetEvents(ctx context.Context, key string) ([]domain.Event, error)
	SetEvents(ctx context.Context, key string, events []domain.Event) error
}

// GeoStoreInterface defines the interface for the venue geo index.
type GeoStoreInterface interface {
	IndexVenues(ctx context.Context, venues []domain.Venue) error
	FindNearbyVenues(ctx context.Context, lat, lng, radiusKm float64) ([]VenuePoint, error)
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireRefreshLock(ctx context.Context, name string, ttl time.Duration) (bool, error)
	ReleaseRefreshLock(ctx context.Context, name string) error
}

// Ensure concrete types implement interfaces.
var (
	_ CacheStoreInterface = (*CacheStore)(nil)
	_ GeoStoreInterface   = (*GeoStore)(nil)
	_ LockStoreInterface  = (*LockStore)(nil)
)
