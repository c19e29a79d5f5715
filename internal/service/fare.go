package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cityguide/internal/client/osrm"
	"cityguide/internal/domain"
	"cityguide/internal/fare"
	"cityguide/internal/redis"
)

// RouteClient resolves a driving route between two points.
type RouteClient interface {
	Route(ctx context.Context, pickup, destination domain.Coordinate) (*domain.Route, error)
}

// FareService produces fare estimates for a trip: it routes via the
// routing upstream and prices the distance with the tariff calculator.
type FareService struct {
	router     RouteClient
	calculator *fare.Calculator
	cache      redis.CacheStoreInterface
}

// NewFareService creates a new FareService. cache may be nil; estimates
// then always hit the routing upstream.
func NewFareService(router RouteClient, calculator *fare.Calculator, cache redis.CacheStoreInterface) *FareService {
	return &FareService{
		router:     router,
		calculator: calculator,
		cache:      cache,
	}
}

// EstimateFareRequest contains the parameters for a fare estimate.
type EstimateFareRequest struct {
	Pickup      domain.Coordinate
	Destination domain.Coordinate
}

// FareEstimate is a priced route.
type FareEstimate struct {
	ID        string                 `json:"id"`
	Route     *domain.Route          `json:"route"`
	Breakdown *domain.PriceBreakdown `json:"breakdown"`
	CreatedAt time.Time              `json:"created_at"`
}

// EstimateFare routes from pickup to destination and applies the tariff
// in effect right now.
func (s *FareService) EstimateFare(ctx context.Context, req EstimateFareRequest) (*FareEstimate, error) {
	if !req.Pickup.Valid() {
		return nil, ErrInvalidPickupLocation
	}
	if !req.Destination.Valid() {
		return nil, ErrInvalidDestinationLocation
	}

	route, err := s.resolveRoute(ctx, req.Pickup, req.Destination)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.calculator.Quote(route.DistanceKm)
	if err != nil {
		return nil, err
	}

	return &FareEstimate{
		ID:        uuid.New().String(),
		Route:     route,
		Breakdown: breakdown,
		CreatedAt: time.Now(),
	}, nil
}

func (s *FareService) resolveRoute(ctx context.Context, pickup, destination domain.Coordinate) (*domain.Route, error) {
	key := routeCacheKey(pickup, destination)

	if s.cache != nil {
		if route, err := s.cache.GetRoute(ctx, key); err == nil && route != nil {
			return route, nil
		}
	}

	route, err := s.router.Route(ctx, pickup, destination)
	if err != nil {
		if errors.Is(err, osrm.ErrNoRoute) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrRoutingUnavailable, err)
	}

	if s.cache != nil {
		_ = s.cache.SetRoute(ctx, key, route)
	}
	return route, nil
}

// routeCacheKey collapses coordinates to ~1m precision so nearby
// requests share a cache entry.
func routeCacheKey(pickup, destination domain.Coordinate) string {
	return fmt.Sprintf("%.5f,%.5f;%.5f,%.5f", pickup.Lat, pickup.Lng, destination.Lat, destination.Lng)
}
