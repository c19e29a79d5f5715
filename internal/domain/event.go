package domain

import "time"

// EventVenue is the place an event happens at. Coordinates are optional;
// venues without them get a best-effort geocoding lookup.
type EventVenue struct {
	Name     string      `json:"name"`
	Address  string      `json:"address,omitempty"`
	City     string      `json:"city,omitempty"`
	Zip      string      `json:"zip,omitempty"`
	Phone    string      `json:"phone,omitempty"`
	Website  string      `json:"website,omitempty"`
	Location *Coordinate `json:"location,omitempty"`
}

// Event is a local event from the events upstream.
type Event struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Excerpt    string     `json:"excerpt,omitempty"`
	URL        string     `json:"url,omitempty"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	AllDay     bool       `json:"all_day"`
	Cost       string     `json:"cost,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`
	Featured   bool       `json:"featured"`
	Categories []string   `json:"categories,omitempty"`
	Venue      EventVenue `json:"venue"`
}
