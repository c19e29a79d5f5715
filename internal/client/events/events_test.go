package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcoming_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tribe/events/v1/events", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("per_page"))
		assert.Equal(t, "2026-09-01", q.Get("start_date"))
		assert.Equal(t, "true", q.Get("featured"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events": [
			{
				"id": 42,
				"title": "Seenachtfest",
				"excerpt": "Feuerwerk am Bodensee",
				"url": "https://example.com/events/seenachtfest",
				"all_day": false,
				"start_date": "2026-09-05 19:00:00",
				"end_date": "2026-09-06 01:00:00",
				"cost": "12€",
				"featured": true,
				"categories": [{"name": "Festival"}, {"name": "Musik"}],
				"venue": {
					"venue": "Stadtgarten",
					"address": "Seestraße 1",
					"city": "Konstanz",
					"geo_lat": 47.6625,
					"geo_lng": 9.1780
				}
			},
			{
				"id": 43,
				"title": "Ohne Ort",
				"start_date": "not a date",
				"venue": {"venue": "Irgendwo", "geo_lat": 0, "geo_lng": 0}
			}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	listed, err := client.Upcoming(context.Background(), Params{
		Page:      2,
		PerPage:   10,
		StartDate: "2026-09-01",
		Featured:  true,
	})
	require.NoError(t, err)
	require.Len(t, listed, 2)

	event := listed[0]
	assert.EqualValues(t, 42, event.ID)
	assert.Equal(t, "Seenachtfest", event.Title)
	assert.Equal(t, []string{"Festival", "Musik"}, event.Categories)
	assert.Equal(t, time.Date(2026, 9, 5, 19, 0, 0, 0, time.UTC), event.StartDate)
	require.NotNil(t, event.Venue.Location)
	assert.InDelta(t, 47.6625, event.Venue.Location.Lat, 0.0001)

	// Unparseable dates stay zero, 0/0 coordinates stay unset.
	assert.True(t, listed[1].StartDate.IsZero())
	assert.Nil(t, listed[1].Venue.Location)
}

func TestUpcoming_OmitsZeroParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	listed, err := client.Upcoming(context.Background(), Params{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestUpcoming_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Upcoming(context.Background(), Params{})
	assert.Error(t, err)
}

func TestParams_CacheKey(t *testing.T) {
	t.Parallel()

	a := Params{Page: 1, PerPage: 20}
	b := Params{Page: 1, PerPage: 20}
	c := Params{Page: 2, PerPage: 20}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
