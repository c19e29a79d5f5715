package openinghours

import (
	"testing"
	"time"

	"cityguide/internal/domain"
)

var (
	konstanz = domain.Coordinate{Lat: 47.6603, Lng: 9.1758}
	berlin   = domain.Coordinate{Lat: 52.5200, Lng: 13.4050}
)

func at(day, month, year, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

func TestEvaluate_AlwaysOpen(t *testing.T) {
	t.Parallel()

	status := Evaluate("24/7", konstanz, at(3, 1, 2024, 4, 30))
	if status.State != StateOpen {
		t.Errorf("expected open, got %v", status.State)
	}
	if !status.NextChange.IsZero() {
		t.Errorf("expected no next change, got %v", status.NextChange)
	}
	if status.Text() != "Open" {
		t.Errorf("unexpected status text %q", status.Text())
	}
}

func TestEvaluate_MalformedSpec_IsUnknown(t *testing.T) {
	t.Parallel()

	testCases := []string{
		"",
		"   ",
		"garbage;;;",
		"Mo-Fr 25:00-99:00",
		"Dec 25 off",
		"week 1-10 10:00-12:00",
	}

	for _, spec := range testCases {
		spec := spec
		t.Run(spec, func(t *testing.T) {
			t.Parallel()

			status := Evaluate(spec, konstanz, at(3, 1, 2024, 12, 0))
			if status.State != StateUnknown {
				t.Errorf("Evaluate(%q) = %v, want unknown", spec, status.State)
			}
			if status.Text() != "Hours unknown" {
				t.Errorf("unexpected status text %q", status.Text())
			}
		})
	}
}

func TestEvaluate_WeekdayRule(t *testing.T) {
	t.Parallel()

	const spec = "Mo-Fr 09:00-18:00"

	// 2024-01-03 is a Wednesday, 2024-01-06 a Saturday.
	open := Evaluate(spec, konstanz, at(3, 1, 2024, 10, 0))
	if open.State != StateOpen {
		t.Fatalf("expected open on Wednesday morning, got %v", open.State)
	}
	if want := at(3, 1, 2024, 18, 0); !open.NextChange.Equal(want) {
		t.Errorf("expected closing at %v, got %v", want, open.NextChange)
	}
	if open.Text() != "Open until 18:00" {
		t.Errorf("unexpected status text %q", open.Text())
	}

	early := Evaluate(spec, konstanz, at(3, 1, 2024, 8, 0))
	if early.State != StateClosed {
		t.Fatalf("expected closed before opening, got %v", early.State)
	}
	if want := at(3, 1, 2024, 9, 0); !early.NextChange.Equal(want) {
		t.Errorf("expected opening at %v, got %v", want, early.NextChange)
	}
	if early.Text() != "Closed • Opens at 09:00" {
		t.Errorf("unexpected status text %q", early.Text())
	}

	weekend := Evaluate(spec, konstanz, at(6, 1, 2024, 10, 0))
	if weekend.State != StateClosed {
		t.Fatalf("expected closed on Saturday, got %v", weekend.State)
	}
	if want := at(8, 1, 2024, 9, 0); !weekend.NextChange.Equal(want) {
		t.Errorf("expected opening Monday at %v, got %v", want, weekend.NextChange)
	}
}

func TestEvaluate_CrossMidnightSpan(t *testing.T) {
	t.Parallel()

	const spec = "Fr-Sa 22:00-04:00"

	// 2024-01-05 is a Friday.
	testCases := []struct {
		name string
		at   time.Time
		want State
	}{
		{"friday before opening", at(5, 1, 2024, 21, 0), StateClosed},
		{"friday night", at(5, 1, 2024, 23, 0), StateOpen},
		{"saturday early morning carries over", at(6, 1, 2024, 2, 0), StateOpen},
		{"saturday after closing", at(6, 1, 2024, 4, 0), StateClosed},
		{"saturday night", at(6, 1, 2024, 23, 30), StateOpen},
		{"sunday early morning carries over", at(7, 1, 2024, 3, 59), StateOpen},
		{"sunday after closing", at(7, 1, 2024, 5, 0), StateClosed},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status := Evaluate(spec, konstanz, tc.at)
			if status.State != tc.want {
				t.Errorf("Evaluate at %v = %v, want %v", tc.at, status.State, tc.want)
			}
		})
	}

	// The overnight span closes at 04:00 the next calendar day.
	open := Evaluate(spec, konstanz, at(6, 1, 2024, 2, 0))
	if want := at(6, 1, 2024, 4, 0); !open.NextChange.Equal(want) {
		t.Errorf("expected closing at %v, got %v", want, open.NextChange)
	}
}

func TestEvaluate_WraparoundDayRange(t *testing.T) {
	t.Parallel()

	const spec = "Sa-Mo 10:00-12:00"

	// 2024-01-07 is a Sunday, 2024-01-09 a Tuesday.
	if status := Evaluate(spec, konstanz, at(7, 1, 2024, 11, 0)); status.State != StateOpen {
		t.Errorf("expected open on Sunday inside Sa-Mo, got %v", status.State)
	}
	if status := Evaluate(spec, konstanz, at(9, 1, 2024, 11, 0)); status.State != StateClosed {
		t.Errorf("expected closed on Tuesday outside Sa-Mo, got %v", status.State)
	}
}

func TestEvaluate_ClosedDayOverride(t *testing.T) {
	t.Parallel()

	const spec = "Mo-Su 10:00-20:00; We off"

	// 2024-01-03 is a Wednesday.
	if status := Evaluate(spec, konstanz, at(3, 1, 2024, 12, 0)); status.State != StateClosed {
		t.Errorf("expected closed on Wednesday, got %v", status.State)
	}
	if status := Evaluate(spec, konstanz, at(4, 1, 2024, 12, 0)); status.State != StateOpen {
		t.Errorf("expected open on Thursday, got %v", status.State)
	}
}

func TestEvaluate_PublicHolidayDependsOnRegion(t *testing.T) {
	t.Parallel()

	const spec = "Mo-Su 12:00-22:00; PH off"

	// 2024-01-06 (Epiphany) is a public holiday in Baden-Württemberg but
	// not in Berlin.
	epiphany := at(6, 1, 2024, 14, 0)

	if status := Evaluate(spec, konstanz, epiphany); status.State != StateClosed {
		t.Errorf("expected closed in Konstanz on Epiphany, got %v", status.State)
	}
	if status := Evaluate(spec, berlin, epiphany); status.State != StateOpen {
		t.Errorf("expected open in Berlin on Epiphany, got %v", status.State)
	}
}

func TestEvaluate_NationwideHoliday(t *testing.T) {
	t.Parallel()

	const spec = "Mo-Su 12:00-22:00; PH 14:00-18:00"

	// German Unity Day, 2024-10-03 (a Thursday): holiday hours override
	// the regular ones everywhere in the country.
	if status := Evaluate(spec, berlin, at(3, 10, 2024, 13, 0)); status.State != StateClosed {
		t.Errorf("expected closed outside holiday hours, got %v", status.State)
	}
	if status := Evaluate(spec, berlin, at(3, 10, 2024, 15, 0)); status.State != StateOpen {
		t.Errorf("expected open during holiday hours, got %v", status.State)
	}
}

func TestEasterSunday(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
	}

	for _, tc := range testCases {
		got := easterSunday(tc.year)
		if got.Month() != tc.month || got.Day() != tc.day {
			t.Errorf("easterSunday(%d) = %v, want %v %d", tc.year, got, tc.month, tc.day)
		}
	}
}

func TestRegionFor(t *testing.T) {
	t.Parallel()

	if got := regionFor(konstanz); got != regionBadenWuerttemberg {
		t.Errorf("expected Konstanz in Baden-Württemberg, got %v", got)
	}
	if got := regionFor(domain.Coordinate{Lat: 48.1372, Lng: 11.5755}); got != regionBavaria {
		t.Errorf("expected Munich in Bavaria, got %v", got)
	}
	if got := regionFor(berlin); got != regionGermany {
		t.Errorf("expected Berlin in Germany, got %v", got)
	}
	if got := regionFor(domain.Coordinate{Lat: 40.7128, Lng: -74.006}); got != regionNone {
		t.Errorf("expected New York outside known regions, got %v", got)
	}
}
