package tariff

import (
	"fmt"
	"time"
)

// Schedule selects the applicable tariff for an instant. The schedule is
// total: every (weekday, hour) pair maps to exactly one tariff.
type Schedule struct {
	DayTariff    string
	NightTariff  string
	DayStartHour int // inclusive
	DayEndHour   int // exclusive
}

// DefaultSchedule returns the fixed weekly schedule: Monday-Saturday
// 06:00-22:00 is the day tariff, all other times (including all of
// Sunday) are the night tariff.
func DefaultSchedule() Schedule {
	return Schedule{
		DayTariff:    "day",
		NightTariff:  "night",
		DayStartHour: 6,
		DayEndHour:   22,
	}
}

// TariffFor returns the tariff identifier applicable at t, in t's
// location. Boundary semantics are exact: 06:00:00 is day, 21:59:59 is
// day, 22:00:00 is night. Sunday is night regardless of hour.
func (s Schedule) TariffFor(t time.Time) string {
	if t.Weekday() == time.Sunday {
		return s.NightTariff
	}
	hour := t.Hour()
	if hour >= s.DayStartHour && hour < s.DayEndHour {
		return s.DayTariff
	}
	return s.NightTariff
}

// Validate checks that the schedule resolves to an existing tariff for
// every weekday and hour of the week.
func (s Schedule) Validate(table *Table) error {
	if s.DayStartHour < 0 || s.DayEndHour > 24 || s.DayStartHour >= s.DayEndHour {
		return fmt.Errorf("invalid day window [%d,%d)", s.DayStartHour, s.DayEndHour)
	}

	// Walk a full week hour by hour so a partial schedule fails at
	// startup instead of at the first fare computation.
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) // a Monday
	for h := 0; h < 7*24; h++ {
		id := s.TariffFor(base.Add(time.Duration(h) * time.Hour))
		if _, ok := table.Get(id); !ok {
			return fmt.Errorf("schedule references unknown tariff %q", id)
		}
	}
	return nil
}
