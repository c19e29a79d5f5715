// Package photon is a client for the Photon geocoder
// (https://photon.komoot.io), with result scoring that biases hits
// towards the configured home region.
package photon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"cityguide/internal/domain"
)

// MinQueryLength is the minimum query size; shorter queries return no
// results without hitting the upstream.
const MinQueryLength = 3

const defaultLimit = 10

// RegionBias steers search results towards the service's home region.
type RegionBias struct {
	Lat          float64  // bias center
	Lng          float64
	BBox         string   // "lngMin,latMin,lngMax,latMax"
	CountryCode  string   // preferred ISO country code, e.g. "DE"
	State        string   // preferred state, e.g. "Baden-Württemberg"
	City         string   // home city, strongest boost
	NearbyCities []string // other municipalities in the district
	FallbackCity string   // display fallback when the hit has no locality
}

// Client queries the Photon API.
type Client struct {
	baseURL    string
	bias       RegionBias
	httpClient *http.Client
}

// NewClient creates a Client for the given Photon base URL.
func NewClient(baseURL string, bias RegionBias, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		bias:       bias,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchParams are the caller-controlled parts of a search request.
// Zero values fall back to the configured region defaults.
type SearchParams struct {
	Query string
	Lang  string
	Limit int
	Lat   float64
	Lng   float64
}

type feature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lng, lat]
	} `json:"geometry"`
	Properties struct {
		Name        string `json:"name"`
		Street      string `json:"street"`
		HouseNumber string `json:"housenumber"`
		Postcode    string `json:"postcode"`
		City        string `json:"city"`
		District    string `json:"district"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"countrycode"`
	} `json:"properties"`
}

type response struct {
	Features []feature `json:"features"`
}

// Search queries the geocoder and returns formatted, region-ranked
// address results.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]domain.AddressResult, error) {
	if len(params.Query) < MinQueryLength {
		return []domain.AddressResult{}, nil
	}

	q := url.Values{}
	q.Set("q", params.Query)
	if params.Lang != "" {
		q.Set("lang", params.Lang)
	} else {
		q.Set("lang", "de")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	if params.Lat != 0 || params.Lng != 0 {
		q.Set("lat", formatFloat(params.Lat))
		q.Set("lon", formatFloat(params.Lng))
	} else {
		q.Set("lat", formatFloat(c.bias.Lat))
		q.Set("lon", formatFloat(c.bias.Lng))
	}
	if c.bias.BBox != "" {
		q.Set("bbox", c.bias.BBox)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("photon: build request: %w", err)
	}

	seg := newrelic.StartExternalSegment(newrelic.FromContext(ctx), req)
	resp, err := c.httpClient.Do(req)
	seg.Response = resp
	seg.End()
	if err != nil {
		return nil, fmt.Errorf("photon: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photon: unexpected status %d", resp.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("photon: decode response: %w", err)
	}

	ranked := c.rank(decoded.Features)

	results := make([]domain.AddressResult, 0, len(ranked))
	for _, f := range ranked {
		results = append(results, c.format(f))
	}
	return results, nil
}

// rank orders features by regional relevance and keeps only hits from
// the preferred country when any exist.
func (c *Client) rank(features []feature) []feature {
	type scored struct {
		feature feature
		score   int
	}

	scoredFeatures := make([]scored, 0, len(features))
	for _, f := range features {
		scoredFeatures = append(scoredFeatures, scored{feature: f, score: c.score(f)})
	}
	sort.SliceStable(scoredFeatures, func(i, j int) bool {
		return scoredFeatures[i].score > scoredFeatures[j].score
	})

	var preferred, all []feature
	for _, s := range scoredFeatures {
		all = append(all, s.feature)
		if c.bias.CountryCode != "" && strings.EqualFold(s.feature.Properties.CountryCode, c.bias.CountryCode) {
			preferred = append(preferred, s.feature)
		}
	}
	if len(preferred) > 0 {
		return preferred
	}
	return all
}

func (c *Client) score(f feature) int {
	props := f.Properties
	score := 0

	city := strings.ToLower(props.City)
	district := strings.ToLower(props.District)
	home := strings.ToLower(c.bias.City)

	switch {
	case home != "" && (strings.Contains(city, home) || strings.Contains(district, home)):
		score += 1000
	case matchesAny(city, c.bias.NearbyCities):
		score += 500
	}
	if props.State == c.bias.State {
		score += 100
	}
	if props.Name != "" {
		score += 50
	}
	if props.Street != "" && props.HouseNumber != "" {
		score += 10
	}
	return score
}

func matchesAny(city string, candidates []string) bool {
	for _, cand := range candidates {
		if strings.Contains(city, strings.ToLower(cand)) {
			return true
		}
	}
	return false
}

// format builds the two display lines: place name over address when the
// hit is a named POI, street over locality otherwise.
func (c *Client) format(f feature) domain.AddressResult {
	props := f.Properties

	var lat, lng float64
	if len(f.Geometry.Coordinates) >= 2 {
		lng = f.Geometry.Coordinates[0]
		lat = f.Geometry.Coordinates[1]
	}

	streetAddr := props.Street
	if streetAddr != "" && props.HouseNumber != "" {
		streetAddr += " " + props.HouseNumber
	}

	locality := joinNonEmpty(" ", props.Postcode, firstNonEmpty(props.City, props.District))

	var line1, line2 string
	switch {
	case props.Name != "" && (props.Street != "" || props.City != ""):
		line1 = props.Name
		line2 = joinNonEmpty(", ", streetAddr, props.Postcode, props.City)
	case props.Street != "":
		line1 = streetAddr
		line2 = locality
	case props.Name != "":
		line1 = props.Name
		line2 = locality
	default:
		line1 = "Adresse"
		line2 = props.City
	}
	if line2 == "" {
		line2 = c.bias.FallbackCity
	}

	return domain.AddressResult{
		DisplayLine1: line1,
		DisplayLine2: line2,
		FullAddress:  line1 + ", " + line2,
		Name:         props.Name,
		Street:       props.Street,
		HouseNumber:  props.HouseNumber,
		PostalCode:   props.Postcode,
		City:         props.City,
		District:     props.District,
		State:        props.State,
		Country:      props.Country,
		CountryCode:  props.CountryCode,
		Location:     domain.Coordinate{Lat: lat, Lng: lng},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
