// Package osrm is a minimal client for the OSRM HTTP routing API.
package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"cityguide/internal/domain"
)

// ErrNoRoute is returned when the router cannot connect the two points.
var ErrNoRoute = errors.New("osrm: no route found")

// Client calls an OSRM instance (e.g. https://router.project-osrm.org).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given OSRM base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64         `json:"distance"` // meters
		Duration float64         `json:"duration"` // seconds
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

// Route requests a driving route from pickup to destination and returns
// the distance in kilometers plus the GeoJSON geometry for rendering.
func (c *Client) Route(ctx context.Context, pickup, destination domain.Coordinate) (*domain.Route, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, pickup.Lng, pickup.Lat, destination.Lng, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("osrm: build request: %w", err)
	}

	seg := newrelic.StartExternalSegment(newrelic.FromContext(ctx), req)
	resp, err := c.httpClient.Do(req)
	seg.Response = resp
	seg.End()
	if err != nil {
		return nil, fmt.Errorf("osrm: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("osrm: unexpected status %d", resp.StatusCode)
	}

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("osrm: decode response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, ErrNoRoute
	}

	best := decoded.Routes[0]
	return &domain.Route{
		DistanceKm: best.Distance / 1000,
		DurationS:  best.Duration,
		Geometry:   best.Geometry,
	}, nil
}
