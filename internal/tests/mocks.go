package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"cityguide/internal/client/events"
	"cityguide/internal/client/photon"
	"cityguide/internal/domain"
	"cityguide/internal/redis"
)

// ──────────────────────────────────────────────
// MOCK ROUTE CLIENT
// ──────────────────────────────────────────────

// MockRouteClient is a mock implementation of service.RouteClient.
type MockRouteClient struct {
	RouteResult *domain.Route
	RouteError  error

	// Counters for verification
	RouteCallCount int32
}

func NewMockRouteClient() *MockRouteClient {
	return &MockRouteClient{}
}

func (m *MockRouteClient) Route(ctx context.Context, pickup, destination domain.Coordinate) (*domain.Route, error) {
	atomic.AddInt32(&m.RouteCallCount, 1)
	if m.RouteError != nil {
		return nil, m.RouteError
	}
	return m.RouteResult, nil
}

// ──────────────────────────────────────────────
// MOCK VENUE LISTER
// ──────────────────────────────────────────────

// MockVenueLister is a mock implementation of service.VenueLister.
type MockVenueLister struct {
	VenueList   []domain.Venue
	VenuesError error

	VenuesCallCount int32
}

func NewMockVenueLister() *MockVenueLister {
	return &MockVenueLister{}
}

func (m *MockVenueLister) Venues(ctx context.Context) ([]domain.Venue, error) {
	atomic.AddInt32(&m.VenuesCallCount, 1)
	if m.VenuesError != nil {
		return nil, m.VenuesError
	}
	return m.VenueList, nil
}

// ──────────────────────────────────────────────
// MOCK EVENT LISTER
// ──────────────────────────────────────────────

// MockEventLister is a mock implementation of service.EventLister.
type MockEventLister struct {
	EventList     []domain.Event
	UpcomingError error

	UpcomingCallCount int32
	LastParams        events.Params
}

func NewMockEventLister() *MockEventLister {
	return &MockEventLister{}
}

func (m *MockEventLister) Upcoming(ctx context.Context, params events.Params) ([]domain.Event, error) {
	atomic.AddInt32(&m.UpcomingCallCount, 1)
	m.LastParams = params
	if m.UpcomingError != nil {
		return nil, m.UpcomingError
	}
	return m.EventList, nil
}

// ──────────────────────────────────────────────
// MOCK GEOCODER
// ──────────────────────────────────────────────

// MockGeocoder is a mock implementation of service.Geocoder.
type MockGeocoder struct {
	Results     []domain.AddressResult
	SearchError error

	SearchCallCount int32
	LastQuery       string
}

func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{}
}

func (m *MockGeocoder) Search(ctx context.Context, params photon.SearchParams) ([]domain.AddressResult, error) {
	atomic.AddInt32(&m.SearchCallCount, 1)
	m.LastQuery = params.Query
	if m.SearchError != nil {
		return nil, m.SearchError
	}
	return m.Results, nil
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is an in-memory mock of redis.CacheStoreInterface.
type MockCacheStore struct {
	mu          sync.RWMutex
	venues      []domain.Venue
	staleVenues []domain.Venue
	routes      map[string]*domain.Route
	events      map[string][]domain.Event

	// Error injection
	GetVenuesError error
	SetVenuesError error
	GetRouteError  error
	GetEventsError error

	// Counters for verification
	GetVenuesCallCount int32
	SetVenuesCallCount int32
	GetRouteCallCount  int32
	SetRouteCallCount  int32
}

func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		routes: make(map[string]*domain.Route),
		events: make(map[string][]domain.Event),
	}
}

// SeedVenues primes the fresh venue cache.
func (m *MockCacheStore) SeedVenues(venues []domain.Venue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.venues = venues
}

// SeedStaleVenues primes the stale venue copy.
func (m *MockCacheStore) SeedStaleVenues(venues []domain.Venue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staleVenues = venues
}

func (m *MockCacheStore) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	atomic.AddInt32(&m.GetVenuesCallCount, 1)
	if m.GetVenuesError != nil {
		return nil, m.GetVenuesError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.venues, nil
}

func (m *MockCacheStore) GetStaleVenues(ctx context.Context) ([]domain.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.staleVenues, nil
}

func (m *MockCacheStore) SetVenues(ctx context.Context, venues []domain.Venue) error {
	atomic.AddInt32(&m.SetVenuesCallCount, 1)
	if m.SetVenuesError != nil {
		return m.SetVenuesError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.venues = venues
	m.staleVenues = venues
	return nil
}

func (m *MockCacheStore) GetRoute(ctx context.Context, key string) (*domain.Route, error) {
	atomic.AddInt32(&m.GetRouteCallCount, 1)
	if m.GetRouteError != nil {
		return nil, m.GetRouteError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.routes[key], nil
}

func (m *MockCacheStore) SetRoute(ctx context.Context, key string, route *domain.Route) error {
	atomic.AddInt32(&m.SetRouteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[key] = route
	return nil
}

func (m *MockCacheStore) GetEvents(ctx context.Context, key string) ([]domain.Event, error) {
	if m.GetEventsError != nil {
		return nil, m.GetEventsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.events[key], nil
}

func (m *MockCacheStore) SetEvents(ctx context.Context, key string, listed []domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[key] = listed
	return nil
}

// ──────────────────────────────────────────────
// MOCK GEO STORE
// ──────────────────────────────────────────────

// MockGeoStore is an in-memory mock of redis.GeoStoreInterface.
type MockGeoStore struct {
	mu     sync.RWMutex
	points []redis.VenuePoint
	seeded bool

	FindError error

	IndexCallCount int32
	FindCallCount  int32
}

func NewMockGeoStore() *MockGeoStore {
	return &MockGeoStore{}
}

// SeedPoints pins the nearby lookup result, in the order the geo index
// would return them. Later IndexVenues calls do not overwrite it.
func (m *MockGeoStore) SeedPoints(points []redis.VenuePoint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = points
	m.seeded = true
}

func (m *MockGeoStore) IndexVenues(ctx context.Context, venues []domain.Venue) error {
	atomic.AddInt32(&m.IndexCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seeded {
		return nil
	}
	m.points = m.points[:0]
	for _, v := range venues {
		m.points = append(m.points, redis.VenuePoint{VenueID: v.ID, Lat: v.Location.Lat, Lng: v.Location.Lng})
	}
	return nil
}

func (m *MockGeoStore) FindNearbyVenues(ctx context.Context, lat, lng, radiusKm float64) ([]redis.VenuePoint, error) {
	atomic.AddInt32(&m.FindCallCount, 1)
	if m.FindError != nil {
		return nil, m.FindError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.points, nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory mock of redis.LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	held  map[string]bool
	Deny  bool // refuse every acquisition
	Error error

	AcquireCallCount int32
	ReleaseCallCount int32
}

func NewMockLockStore() *MockLockStore {
	return &MockLockStore{held: make(map[string]bool)}
}

func (m *MockLockStore) AcquireRefreshLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.Error != nil {
		return false, m.Error
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Deny || m.held[name] {
		return false, nil
	}
	m.held[name] = true
	return true, nil
}

func (m *MockLockStore) ReleaseRefreshLock(ctx context.Context, name string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, name)
	return nil
}

// Interface checks live here so a drifting mock fails the build.
var (
	_ redis.CacheStoreInterface = (*MockCacheStore)(nil)
	_ redis.GeoStoreInterface   = (*MockGeoStore)(nil)
	_ redis.LockStoreInterface  = (*MockLockStore)(nil)
)
