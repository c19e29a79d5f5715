package openinghours

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// timeSpan is a half-open minute range [start, end). end may exceed one
// day for spans crossing midnight (e.g. 22:00-04:00 is [1320, 1680)).
type timeSpan struct {
	start int
	end   int
}

// rule is one semicolon-separated part of a specification, e.g.
// "Mo-Fr 09:00-18:00" or "PH off".
type rule struct {
	days     [7]bool // indexed by time.Weekday
	hasDays  bool
	holidays bool // PH selector
	spans    []timeSpan
	allDay   bool
	closed   bool
}

func (r rule) covers(minute int) bool {
	for _, sp := range r.spans {
		if sp.end > minutesPerDay {
			// The wrapped tail is handled by the next day's overflow
			// check; here only the same-day part counts.
			if minute >= sp.start {
				return true
			}
			continue
		}
		if minute >= sp.start && minute < sp.end {
			return true
		}
	}
	return false
}

var weekdayIndex = map[string]int{
	"Su": 0, "Mo": 1, "Tu": 2, "We": 3, "Th": 4, "Fr": 5, "Sa": 6,
}

func parse(spec string) ([]rule, error) {
	if spec == "" {
		return nil, errors.New("empty specification")
	}

	var rules []rule
	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := parseRule(part)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return nil, errors.New("empty specification")
	}
	return rules, nil
}

func parseRule(s string) (rule, error) {
	var r rule

	if s == "24/7" {
		r.spans = []timeSpan{{start: 0, end: minutesPerDay}}
		return r, nil
	}

	for _, tok := range strings.Fields(s) {
		switch {
		case tok == "off" || tok == "closed":
			r.closed = true
		case tok == "open":
			// implied by a plain time span
		case strings.ContainsRune(tok, ':'):
			spans, err := parseSpans(tok)
			if err != nil {
				return rule{}, err
			}
			r.spans = append(r.spans, spans...)
		default:
			if err := parseDaySelector(tok, &r); err != nil {
				return rule{}, err
			}
		}
	}

	if len(r.spans) == 0 {
		if !r.hasDays && !r.holidays && !r.closed {
			return rule{}, fmt.Errorf("rule %q has no selectors", s)
		}
		r.allDay = true
	}
	return r, nil
}

func parseDaySelector(tok string, r *rule) error {
	for _, atom := range strings.Split(tok, ",") {
		if atom == "PH" {
			r.holidays = true
			continue
		}
		// School holidays, week numbers, months and other selectors are
		// not supported; they surface as unknown status.
		if from, to, ok := strings.Cut(atom, "-"); ok {
			start, okFrom := weekdayIndex[from]
			end, okTo := weekdayIndex[to]
			if !okFrom || !okTo {
				return fmt.Errorf("unsupported selector %q", atom)
			}
			for i := start; ; i = (i + 1) % 7 {
				r.days[i] = true
				if i == end {
					break
				}
			}
			r.hasDays = true
			continue
		}
		idx, ok := weekdayIndex[atom]
		if !ok {
			return fmt.Errorf("unsupported selector %q", atom)
		}
		r.days[idx] = true
		r.hasDays = true
	}
	return nil
}

func parseSpans(tok string) ([]timeSpan, error) {
	var spans []timeSpan
	for _, part := range strings.Split(tok, ",") {
		from, to, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("invalid time span %q", part)
		}
		start, err := parseClock(from)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(to)
		if err != nil {
			return nil, err
		}
		if start >= minutesPerDay {
			return nil, fmt.Errorf("span start %q past midnight", from)
		}
		if end <= start {
			end += minutesPerDay
		}
		spans = append(spans, timeSpan{start: start, end: end})
	}
	return spans, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	// OSM allows end times like 26:00 meaning 02:00 the next day.
	if h < 0 || h > 48 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}
