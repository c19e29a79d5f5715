package tariff

import (
	"testing"
	"time"
)

func TestSchedule_TariffFor_Boundaries(t *testing.T) {
	t.Parallel()

	schedule := DefaultSchedule()

	// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
	testCases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"monday 06:00 is day", time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), "day"},
		{"monday 05:59 is night", time.Date(2024, 1, 1, 5, 59, 0, 0, time.UTC), "night"},
		{"monday 21:59 is day", time.Date(2024, 1, 1, 21, 59, 59, 0, time.UTC), "day"},
		{"monday 22:00 is night", time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC), "night"},
		{"saturday noon is day", time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), "day"},
		{"sunday 10:00 is night", time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC), "night"},
		{"sunday 23:00 is night", time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC), "night"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := schedule.TariffFor(tc.at); got != tc.want {
				t.Errorf("TariffFor(%v) = %q, want %q", tc.at, got, tc.want)
			}
		})
	}
}

func TestSchedule_Validate(t *testing.T) {
	t.Parallel()

	table := DefaultTable()

	if err := DefaultSchedule().Validate(table); err != nil {
		t.Errorf("expected default schedule to validate, got: %v", err)
	}

	unknown := Schedule{DayTariff: "day", NightTariff: "missing", DayStartHour: 6, DayEndHour: 22}
	if err := unknown.Validate(table); err == nil {
		t.Error("expected error for unknown night tariff")
	}

	inverted := Schedule{DayTariff: "day", NightTariff: "night", DayStartHour: 22, DayEndHour: 6}
	if err := inverted.Validate(table); err == nil {
		t.Error("expected error for inverted day window")
	}
}
