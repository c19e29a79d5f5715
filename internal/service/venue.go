package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cityguide/internal/domain"
	"cityguide/internal/openinghours"
	"cityguide/internal/redis"
)

// VenueLister fetches the raw venue listing from the map-data upstream.
type VenueLister interface {
	Venues(ctx context.Context) ([]domain.Venue, error)
}

const venueRefreshLockTTL = 30 * time.Second

// VenueService serves nightlife venues with their current open/closed
// status. Listings are cached; when every upstream endpoint is down the
// last known listing is served instead.
type VenueService struct {
	lister VenueLister
	cache  redis.CacheStoreInterface
	geo    redis.GeoStoreInterface
	locks  redis.LockStoreInterface
	now    func() time.Time
}

// NewVenueService creates a new VenueService. cache, geo and locks may
// be nil; the service then always hits the upstream directly.
func NewVenueService(lister VenueLister, cache redis.CacheStoreInterface, geo redis.GeoStoreInterface, locks redis.LockStoreInterface) *VenueService {
	return &VenueService{
		lister: lister,
		cache:  cache,
		geo:    geo,
		locks:  locks,
		now:    time.Now,
	}
}

// SetClock replaces the wall clock used for opening-hours evaluation.
func (s *VenueService) SetClock(now func() time.Time) {
	s.now = now
}

// VenueWithStatus is a venue plus its opening status at request time.
// State is "open", "closed" or "unknown"; unparseable or missing hours
// are reported as unknown, never assumed open.
type VenueWithStatus struct {
	domain.Venue
	State      string     `json:"state"`
	StatusText string     `json:"status_text"`
	NextChange *time.Time `json:"next_change,omitempty"`
}

// ListNightlife returns all nightlife venues with evaluated status.
func (s *VenueService) ListNightlife(ctx context.Context) ([]VenueWithStatus, error) {
	venues, err := s.venues(ctx)
	if err != nil {
		return nil, err
	}
	return s.withStatus(venues), nil
}

// Nearby returns venues within radiusKm of the given point, nearest
// first.
func (s *VenueService) Nearby(ctx context.Context, loc domain.Coordinate, radiusKm float64) ([]VenueWithStatus, error) {
	if !loc.Valid() {
		return nil, ErrInvalidLocation
	}

	venues, err := s.venues(ctx)
	if err != nil {
		return nil, err
	}

	if s.geo == nil {
		return s.withStatus(venues), nil
	}

	points, err := s.geo.FindNearbyVenues(ctx, loc.Lat, loc.Lng, radiusKm)
	if err != nil {
		// Geo index unavailable; fall back to the full listing.
		return s.withStatus(venues), nil
	}

	byID := make(map[string]domain.Venue, len(venues))
	for _, v := range venues {
		byID[v.ID] = v
	}

	ordered := make([]domain.Venue, 0, len(points))
	for _, p := range points {
		if v, ok := byID[p.VenueID]; ok {
			ordered = append(ordered, v)
		}
	}
	return s.withStatus(ordered), nil
}

// GeoJSON exports the venue listing as a GeoJSON FeatureCollection for
// map rendering.
func (s *VenueService) GeoJSON(ctx context.Context) (json.RawMessage, error) {
	venues, err := s.ListNightlife(ctx)
	if err != nil {
		return nil, err
	}

	type geometry struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
	}
	type feature struct {
		Type       string         `json:"type"`
		Geometry   geometry       `json:"geometry"`
		Properties map[string]any `json:"properties"`
	}

	features := make([]feature, 0, len(venues))
	for _, v := range venues {
		features = append(features, feature{
			Type: "Feature",
			Geometry: geometry{
				Type:        "Point",
				Coordinates: [2]float64{v.Location.Lng, v.Location.Lat},
			},
			Properties: map[string]any{
				"id":            v.ID,
				"name":          v.Name,
				"type":          v.Type,
				"intensity":     v.Intensity,
				"state":         v.State,
				"status_text":   v.StatusText,
				"opening_hours": v.OpeningHours,
			},
		})
	}

	return json.Marshal(struct {
		Type     string    `json:"type"`
		Features []feature `json:"features"`
	}{Type: "FeatureCollection", Features: features})
}

// venues returns the listing from cache or upstream, falling back to the
// stale copy when the upstream is down.
func (s *VenueService) venues(ctx context.Context) ([]domain.Venue, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetVenues(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	if s.locks != nil {
		acquired, err := s.locks.AcquireRefreshLock(ctx, "venues", venueRefreshLockTTL)
		if err == nil && acquired {
			defer func() { _ = s.locks.ReleaseRefreshLock(ctx, "venues") }()
		} else if err == nil && !acquired && s.cache != nil {
			// Another instance is refreshing; serve the last known
			// listing rather than stampeding the upstream.
			if stale, err := s.cache.GetStaleVenues(ctx); err == nil && stale != nil {
				return stale, nil
			}
		}
	}

	venues, err := s.lister.Venues(ctx)
	if err != nil {
		if s.cache != nil {
			if stale, staleErr := s.cache.GetStaleVenues(ctx); staleErr == nil && stale != nil {
				return stale, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrVenueDataUnavailable, err)
	}

	if s.cache != nil {
		_ = s.cache.SetVenues(ctx, venues)
	}
	if s.geo != nil {
		_ = s.geo.IndexVenues(ctx, venues)
	}
	return venues, nil
}

func (s *VenueService) withStatus(venues []domain.Venue) []VenueWithStatus {
	now := s.now()
	out := make([]VenueWithStatus, 0, len(venues))
	for _, v := range venues {
		vs := VenueWithStatus{Venue: v}
		if v.OpeningHours == "" {
			vs.State = openinghours.StateUnknown.String()
			vs.StatusText = "Hours unknown"
		} else {
			status := openinghours.Evaluate(v.OpeningHours, v.Location, now)
			vs.State = status.State.String()
			vs.StatusText = status.Text()
			if !status.NextChange.IsZero() {
				next := status.NextChange
				vs.NextChange = &next
			}
		}
		out = append(out, vs)
	}
	return out
}
