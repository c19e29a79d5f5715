// Package overpass queries the Overpass API for nightlife venues
// (bars, pubs, nightclubs) within a bounding box.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"cityguide/internal/domain"
)

// Client queries one or more Overpass instances. Endpoints after the
// first are fallbacks, tried in order when the previous one fails or
// returns nothing.
type Client struct {
	endpoints  []string
	bbox       string // "latMin,lngMin,latMax,lngMax"
	httpClient *http.Client
}

// NewClient creates a Client. bbox is the Overpass-style bounding box
// "latMin,lngMin,latMax,lngMax".
func NewClient(endpoints []string, bbox string, timeout time.Duration) *Client {
	return &Client{
		endpoints:  endpoints,
		bbox:       bbox,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type element struct {
	Type   string  `json:"type"`
	ID     int64   `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type response struct {
	Elements []element `json:"elements"`
}

// Venues fetches all nightlife venues in the configured bounding box.
func (c *Client) Venues(ctx context.Context) ([]domain.Venue, error) {
	var lastErr error
	for _, endpoint := range c.endpoints {
		venues, err := c.fetch(ctx, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		if len(venues) > 0 {
			return venues, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("overpass: no venues returned by any endpoint")
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]domain.Venue, error) {
	form := url.Values{"data": {c.query()}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	seg := newrelic.StartExternalSegment(newrelic.FromContext(ctx), req)
	resp, err := c.httpClient.Do(req)
	seg.Response = resp
	seg.End()
	if err != nil {
		return nil, fmt.Errorf("overpass: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass: unexpected status %d", resp.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("overpass: decode response: %w", err)
	}

	venues := make([]domain.Venue, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		if v, ok := toVenue(el); ok {
			venues = append(venues, v)
		}
	}
	return venues, nil
}

func (c *Client) query() string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"bar", "pub", "nightclub"} {
		fmt.Fprintf(&b, "  node[\"amenity\"=%q](%s);\n", kind, c.bbox)
		fmt.Fprintf(&b, "  way[\"amenity\"=%q](%s);\n", kind, c.bbox)
	}
	b.WriteString(");\nout center tags;\n")
	return b.String()
}

// toVenue converts an Overpass element, skipping untagged elements and
// those without usable coordinates.
func toVenue(el element) (domain.Venue, bool) {
	if el.Tags == nil {
		return domain.Venue{}, false
	}

	lat, lon := el.Lat, el.Lon
	if el.Center != nil {
		// Ways and relations carry their centroid instead of lat/lon.
		lat, lon = el.Center.Lat, el.Center.Lon
	}
	if lat == 0 || lon == 0 {
		return domain.Venue{}, false
	}

	var venueType domain.VenueType
	var intensity float64
	switch el.Tags["amenity"] {
	case "bar":
		venueType, intensity = domain.VenueTypeBar, 1
	case "pub":
		venueType, intensity = domain.VenueTypePub, 1.5
	case "nightclub":
		venueType, intensity = domain.VenueTypeNightclub, 3
	default:
		return domain.Venue{}, false
	}

	name := el.Tags["name"]
	if name == "" {
		name = "Unnamed venue"
	}

	return domain.Venue{
		ID:           fmt.Sprintf("%s-%d", el.Type, el.ID),
		Name:         name,
		Type:         venueType,
		Location:     domain.Coordinate{Lat: lat, Lng: lon},
		OpeningHours: el.Tags["opening_hours"],
		Intensity:    intensity,
	}, true
}
