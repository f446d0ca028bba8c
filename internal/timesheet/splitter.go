package timesheet

// SplitByDay divides a shift into one half-open span per calendar day it
// touches. Spans are clipped to the shift's bounds; empty spans are dropped.
// The span durations always sum to exactly the shift duration.
func SplitByDay(s Shift) []DaySpan {
	var spans []DaySpan

	for day := midnight(s.Start); day.Before(s.End); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)

		start := s.Start
		if day.After(start) {
			start = day
		}
		end := s.End
		if next.Before(end) {
			end = next
		}

		if !start.Before(end) {
			continue
		}
		spans = append(spans, DaySpan{Date: day, Start: start, End: end})
	}

	return spans
}
