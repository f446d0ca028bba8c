package holiday

import "time"

// Calendar is an immutable holiday snapshot handed to each timesheet
// computation. Membership is
//
//	(algorithmic \ ignored) ∪ custom
//
// The ignore set suppresses only algorithmic dates; a custom holiday can never
// be ignored, only deleted. Dates outside the generated year range are simply
// not algorithmic holidays. Safe for concurrent use once built.
type Calendar struct {
	algorithmic map[string]string
	custom      map[string]string
	ignored     map[string]bool
}

// NewCalendar builds a snapshot covering every year in [from, to], widened by
// one year on each side so overnight shifts at range edges resolve correctly.
func NewCalendar(from, to time.Time, custom, ignored map[string]string) *Calendar {
	cal := &Calendar{
		algorithmic: map[string]string{},
		custom:      map[string]string{},
		ignored:     map[string]bool{},
	}
	for year := from.Year() - 1; year <= to.Year()+1; year++ {
		for date, name := range brazilCE(year) {
			cal.algorithmic[date] = name
		}
	}
	for date, desc := range custom {
		cal.custom[date] = desc
	}
	for date := range ignored {
		cal.ignored[date] = true
	}
	return cal
}

// IsHoliday implements timesheet.HolidayCalendar.
func (c *Calendar) IsHoliday(date time.Time) bool {
	key := date.Format("2006-01-02")
	if _, ok := c.custom[key]; ok {
		return true
	}
	if c.ignored[key] {
		return false
	}
	_, ok := c.algorithmic[key]
	return ok
}

// Describe returns the holiday name for a date, preferring the custom entry,
// and false when the date is a normal workday.
func (c *Calendar) Describe(date time.Time) (string, bool) {
	key := date.Format("2006-01-02")
	if desc, ok := c.custom[key]; ok {
		return desc, true
	}
	if c.ignored[key] {
		return "", false
	}
	name, ok := c.algorithmic[key]
	return name, ok
}
