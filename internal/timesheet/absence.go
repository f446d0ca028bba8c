package timesheet

import (
	"sort"
	"strings"
	"time"
)

// IsWatchman reports whether a role label marks a continuous-shift watchman
// ("vigia"), exempt from overtime computation and absence tracking.
func IsWatchman(role string) bool {
	return strings.Contains(strings.ToLower(role), "vigia")
}

// Absences flags, for every Monday–Friday non-holiday date in [from, to],
// the roster employees with no ENTRADA punch on that date. Watchman roles are
// dropped from the expected set; employees with no absences are omitted from
// the result. Dates in each list are ISO-formatted and ascending.
func Absences(from, to time.Time, roster []RosterEntry, events []Event, cal HolidayCalendar) map[string][]string {
	expected := make(map[string]bool, len(roster))
	for _, r := range roster {
		if !IsWatchman(r.Role) {
			expected[r.Name] = true
		}
	}

	// employee -> set of dates with a start-of-shift punch
	present := make(map[string]map[string]bool)
	for _, ev := range events {
		if ev.Action != ActionStart {
			continue
		}
		key := dateKey(ev.At)
		if present[ev.Employee] == nil {
			present[ev.Employee] = make(map[string]bool)
		}
		present[ev.Employee][key] = true
	}

	absences := make(map[string][]string)
	for day := midnight(from); !day.After(to); day = day.AddDate(0, 0, 1) {
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday || cal.IsHoliday(day) {
			continue
		}

		key := dateKey(day)
		for name := range expected {
			if !present[name][key] {
				absences[name] = append(absences[name], key)
			}
		}
	}

	for name := range absences {
		sort.Strings(absences[name])
	}
	return absences
}
