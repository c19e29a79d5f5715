package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"cityguide/internal/domain"
)

const venueGeoKey = "venues:locations"

// VenuePoint is a venue position from the geo index.
type VenuePoint struct {
	VenueID string
	Lat     float64
	Lng     float64
}

// GeoStore maintains a Redis geo index over venue positions so nearby
// lookups do not rescan the full venue listing.
type GeoStore struct {
	client *redis.Client
}

// NewGeoStore creates a new GeoStore.
func NewGeoStore(client *redis.Client) *GeoStore {
	return &GeoStore{client: client}
}

// IndexVenues replaces the geo index with the given venues using GEOADD.
func (s *GeoStore) IndexVenues(ctx context.Context, venues []domain.Venue) error {
	if len(venues) == 0 {
		return nil
	}

	locations := make([]*redis.GeoLocation, 0, len(venues))
	for _, v := range venues {
		locations = append(locations, &redis.GeoLocation{
			Name:      v.ID,
			Longitude: v.Location.Lng,
			Latitude:  v.Location.Lat,
		})
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, venueGeoKey)
	pipe.GeoAdd(ctx, venueGeoKey, locations...)
	_, err := pipe.Exec(ctx)
	return err
}

// FindNearbyVenues returns venue IDs within the given radius (in
// kilometers), nearest first.
func (s *GeoStore) FindNearbyVenues(ctx context.Context, lat, lng, radiusKm float64) ([]VenuePoint, error) {
	results, err := s.client.GeoRadius(ctx, venueGeoKey, lng, lat, &redis.GeoRadiusQuery{
		Radius:    radiusKm,
		Unit:      "km",
		WithCoord: true,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}

	points := make([]VenuePoint, 0, len(results))
	for _, r := range results {
		points = append(points, VenuePoint{
			VenueID: r.Name,
			Lat:     r.Latitude,
			Lng:     r.Longitude,
		})
	}

	return points, nil
}
