// Package openinghours evaluates weekly opening-hours specifications in
// the OSM opening_hours format against an instant and a location. The
// location selects the regional public-holiday calendar, so two venues
// with identical specifications can legitimately differ on holidays.
package openinghours

import (
	"fmt"
	"strings"
	"time"

	"cityguide/internal/domain"
)

// State is the tri-state result of an evaluation. Specifications that
// cannot be parsed yield StateUnknown; they are never coerced to open.
type State int

const (
	StateUnknown State = iota
	StateClosed
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Status is the result of evaluating a specification at an instant.
// NextChange is the next closing time if currently open, the next
// opening time if currently closed, and zero if no transition was found
// within the scan horizon (or the state is unknown).
type Status struct {
	State      State
	NextChange time.Time
}

// Text returns the human-readable status line shown on venue cards.
func (s Status) Text() string {
	switch s.State {
	case StateOpen:
		if !s.NextChange.IsZero() {
			return fmt.Sprintf("Open until %s", s.NextChange.Format("15:04"))
		}
		return "Open"
	case StateClosed:
		if !s.NextChange.IsZero() {
			return fmt.Sprintf("Closed • Opens at %s", s.NextChange.Format("15:04"))
		}
		return "Closed"
	default:
		return "Hours unknown"
	}
}

// Evaluation scans forward at minute resolution; venues with no state
// change within this window report a zero NextChange.
const scanHorizon = 8 * 24 * time.Hour

// Evaluate determines whether a venue is open at the given instant.
// It is a pure function of (spec, location, instant) and never panics on
// malformed input.
func Evaluate(spec string, loc domain.Coordinate, at time.Time) Status {
	rules, err := parse(strings.TrimSpace(spec))
	if err != nil {
		return Status{State: StateUnknown}
	}

	e := &evaluator{rules: rules, loc: loc, holidays: make(map[string]bool)}

	open := e.openAt(at)
	state := StateClosed
	if open {
		state = StateOpen
	}

	return Status{State: state, NextChange: e.nextChange(at, open)}
}

// evaluator caches per-date holiday lookups across the minute scan.
type evaluator struct {
	rules    []rule
	loc      domain.Coordinate
	holidays map[string]bool
}

func (e *evaluator) isHoliday(day time.Time) bool {
	key := day.Format("2006-01-02")
	if v, ok := e.holidays[key]; ok {
		return v
	}
	v := isPublicHoliday(e.loc, day)
	e.holidays[key] = v
	return v
}

// openAt reports whether the venue is open at t. A minute is open if the
// rules for t's date cover it, or if a span from the previous day runs
// past midnight into it.
func (e *evaluator) openAt(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	if e.dayVerdict(t, minute) {
		return true
	}
	return e.overflowVerdict(t.AddDate(0, 0, -1), minute+minutesPerDay)
}

// dayVerdict applies the rules matching the given date in order; later
// rules override earlier ones for the days they select.
func (e *evaluator) dayVerdict(day time.Time, minute int) bool {
	open := false
	for _, r := range e.rules {
		if !e.matches(r, day) {
			continue
		}
		if r.closed {
			if r.allDay || r.covers(minute) {
				open = false
			}
			continue
		}
		open = r.allDay || r.covers(minute)
	}
	return open
}

// overflowVerdict checks spans of the previous day that cross midnight.
func (e *evaluator) overflowVerdict(day time.Time, minute int) bool {
	open := false
	for _, r := range e.rules {
		if !e.matches(r, day) {
			continue
		}
		if r.closed {
			if r.allDay {
				open = false
			}
			continue
		}
		for _, sp := range r.spans {
			if sp.end > minutesPerDay && minute >= sp.start && minute < sp.end {
				open = true
			}
		}
	}
	return open
}

func (e *evaluator) matches(r rule, day time.Time) bool {
	if r.hasDays && r.days[day.Weekday()] {
		return true
	}
	if r.holidays && e.isHoliday(day) {
		return true
	}
	return !r.hasDays && !r.holidays
}

// nextChange scans forward minute by minute for the first state flip.
func (e *evaluator) nextChange(at time.Time, open bool) time.Time {
	cur := at.Truncate(time.Minute)
	limit := int(scanHorizon / time.Minute)
	for i := 1; i <= limit; i++ {
		t := cur.Add(time.Duration(i) * time.Minute)
		if e.openAt(t) != open {
			return t
		}
	}
	return time.Time{}
}
