package openinghours

import (
	"time"

	"cityguide/internal/domain"
)

// holidayRegion identifies which public-holiday calendar applies at a
// location.
type holidayRegion int

const (
	regionNone holidayRegion = iota
	regionGermany
	regionBadenWuerttemberg
	regionBavaria
)

// regionFor resolves a coordinate to a holiday calendar using coarse
// bounding boxes. State boxes are checked before the national box; the
// service's home region (Baden-Württemberg) wins in the overlap zone.
func regionFor(loc domain.Coordinate) holidayRegion {
	switch {
	case within(loc, 47.5, 49.8, 7.4, 10.5):
		return regionBadenWuerttemberg
	case within(loc, 47.2, 50.6, 8.9, 13.9):
		return regionBavaria
	case within(loc, 47.2, 55.1, 5.8, 15.1):
		return regionGermany
	default:
		return regionNone
	}
}

func within(loc domain.Coordinate, latMin, latMax, lngMin, lngMax float64) bool {
	return loc.Lat >= latMin && loc.Lat <= latMax && loc.Lng >= lngMin && loc.Lng <= lngMax
}

// isPublicHoliday reports whether the calendar date of day is a public
// holiday at loc. Outside the known regions no holiday data is available
// and every day is treated as a regular day.
func isPublicHoliday(loc domain.Coordinate, day time.Time) bool {
	region := regionFor(loc)
	if region == regionNone {
		return false
	}

	y, m, d := day.Date()
	for _, h := range holidaysFor(y, region) {
		hy, hm, hd := h.Date()
		if hy == y && hm == m && hd == d {
			return true
		}
	}
	return false
}

// holidaysFor returns the public holidays of the given year for a region.
func holidaysFor(year int, region holidayRegion) []time.Time {
	easter := easterSunday(year)

	fixed := func(m time.Month, d int) time.Time {
		return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
	}

	// Nationwide holidays.
	days := []time.Time{
		fixed(time.January, 1),          // Neujahr
		easter.AddDate(0, 0, -2),        // Karfreitag
		easter.AddDate(0, 0, 1),         // Ostermontag
		fixed(time.May, 1),              // Tag der Arbeit
		easter.AddDate(0, 0, 39),        // Christi Himmelfahrt
		easter.AddDate(0, 0, 50),        // Pfingstmontag
		fixed(time.October, 3),          // Tag der Deutschen Einheit
		fixed(time.December, 25),        // 1. Weihnachtstag
		fixed(time.December, 26),        // 2. Weihnachtstag
	}

	switch region {
	case regionBadenWuerttemberg:
		days = append(days,
			fixed(time.January, 6),   // Heilige Drei Könige
			easter.AddDate(0, 0, 60), // Fronleichnam
			fixed(time.November, 1),  // Allerheiligen
		)
	case regionBavaria:
		days = append(days,
			fixed(time.January, 6),
			easter.AddDate(0, 0, 60),
			fixed(time.August, 15), // Mariä Himmelfahrt
			fixed(time.November, 1),
		)
	}

	return days
}

// easterSunday computes the date of Easter Sunday for a year using the
// anonymous Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
