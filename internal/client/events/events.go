// Package events is a client for a WordPress "The Events Calendar" REST
// endpoint (wp-json/tribe/events/v1).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"cityguide/internal/domain"
)

// Client queries the events upstream.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given wp-json base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Params filter the event listing. Zero values are omitted from the
// request.
type Params struct {
	Page      int
	PerPage   int
	StartDate string // YYYY-MM-DD
	EndDate   string
	Search    string
	Featured  bool
}

// CacheKey returns a stable key identifying this query for caching.
func (p Params) CacheKey() string {
	return fmt.Sprintf("p%d:n%d:s%s:e%s:q%s:f%t", p.Page, p.PerPage, p.StartDate, p.EndDate, p.Search, p.Featured)
}

const dateLayout = "2006-01-02 15:04:05"

type eventJSON struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	URL       string `json:"url"`
	AllDay    bool   `json:"all_day"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Cost      string `json:"cost"`
	Featured  bool   `json:"featured"`
	Image     struct {
		URL string `json:"url"`
	} `json:"image"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	Venue struct {
		Venue   string `json:"venue"`
		Address string `json:"address"`
		City    string `json:"city"`
		Zip     string `json:"zip"`
		Phone   string `json:"phone"`
		Website string `json:"website"`
		GeoLat  json.Number `json:"geo_lat"`
		GeoLng  json.Number `json:"geo_lng"`
	} `json:"venue"`
}

type listResponse struct {
	Events []eventJSON `json:"events"`
}

// Upcoming lists events matching the given filters.
func (c *Client) Upcoming(ctx context.Context, params Params) ([]domain.Event, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.StartDate != "" {
		q.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		q.Set("end_date", params.EndDate)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Featured {
		q.Set("featured", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tribe/events/v1/events?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("events: build request: %w", err)
	}

	seg := newrelic.StartExternalSegment(newrelic.FromContext(ctx), req)
	resp, err := c.httpClient.Do(req)
	seg.Response = resp
	seg.End()
	if err != nil {
		return nil, fmt.Errorf("events: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events: unexpected status %d", resp.StatusCode)
	}

	var decoded listResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("events: decode response: %w", err)
	}

	out := make([]domain.Event, 0, len(decoded.Events))
	for _, e := range decoded.Events {
		out = append(out, toEvent(e))
	}
	return out, nil
}

func toEvent(e eventJSON) domain.Event {
	event := domain.Event{
		ID:       e.ID,
		Title:    e.Title,
		Excerpt:  e.Excerpt,
		URL:      e.URL,
		AllDay:   e.AllDay,
		Cost:     e.Cost,
		ImageURL: e.Image.URL,
		Featured: e.Featured,
		Venue: domain.EventVenue{
			Name:    e.Venue.Venue,
			Address: e.Venue.Address,
			City:    e.Venue.City,
			Zip:     e.Venue.Zip,
			Phone:   e.Venue.Phone,
			Website: e.Venue.Website,
		},
	}

	if t, err := time.Parse(dateLayout, e.StartDate); err == nil {
		event.StartDate = t
	}
	if t, err := time.Parse(dateLayout, e.EndDate); err == nil {
		event.EndDate = t
	}
	for _, cat := range e.Categories {
		event.Categories = append(event.Categories, cat.Name)
	}

	lat, latErr := e.Venue.GeoLat.Float64()
	lng, lngErr := e.Venue.GeoLng.Float64()
	if latErr == nil && lngErr == nil && (lat != 0 || lng != 0) {
		event.Venue.Location = &domain.Coordinate{Lat: lat, Lng: lng}
	}

	return event
}
