package timesheet

import "time"

// Workday boundaries under the CLT shift rules this engine models.
const (
	dayStartHour     = 7  // work before 07:00 is 50%-premium on weekdays
	weekdayEndHour   = 17 // Monday–Thursday shift end
	fridayEndHour    = 16 // Friday shift end
)

// Classify partitions one per-day span into premium fragments, in priority
// order:
//
//  1. Holiday or Sunday: the whole span is 100%-premium.
//  2. Otherwise, the portion before 07:00 is 50%-premium.
//  3. Saturday: everything from 07:00 on is 50%-premium.
//  4. Monday–Friday: the portion past the end-of-shift threshold
//     (16:00 Friday, 17:00 otherwise) is 50%-premium.
//
// Time not captured above is regular and produces no fragment. Each fragment
// is tagged with the day part of its own start and the originating shift
// start, so reports can attribute overnight spillover to the right shift.
func Classify(span DaySpan, shiftStart time.Time, cal HolidayCalendar) []Fragment {
	var frags []Fragment

	emit := func(start, end time.Time, bucket Bucket) {
		if !start.Before(end) {
			return
		}
		frags = append(frags, Fragment{
			Date:       span.Date,
			Duration:   end.Sub(start),
			ShiftStart: shiftStart,
			DayPart:    PartOfDay(start),
			Bucket:     bucket,
		})
	}

	weekday := span.Date.Weekday()
	if cal.IsHoliday(span.Date) || weekday == time.Sunday {
		emit(span.Start, span.End, Premium100)
		return frags
	}

	morningLimit := span.Date.Add(dayStartHour * time.Hour)
	if span.Start.Before(morningLimit) {
		end := span.End
		if morningLimit.Before(end) {
			end = morningLimit
		}
		emit(span.Start, end, Premium50)
	}

	if weekday == time.Saturday {
		start := span.Start
		if morningLimit.After(start) {
			start = morningLimit
		}
		emit(start, span.End, Premium50)
		return frags
	}

	endHour := weekdayEndHour
	if weekday == time.Friday {
		endHour = fridayEndHour
	}
	eveningLimit := span.Date.Add(time.Duration(endHour) * time.Hour)
	if span.End.After(eveningLimit) {
		start := span.Start
		if eveningLimit.After(start) {
			start = eveningLimit
		}
		emit(start, span.End, Premium50)
	}

	return frags
}

// ClassifyShifts runs the split-then-classify pipeline over a shift list.
func ClassifyShifts(shifts []Shift, cal HolidayCalendar) []Fragment {
	var frags []Fragment
	for _, sh := range shifts {
		for _, span := range SplitByDay(sh) {
			frags = append(frags, Classify(span, sh.Start, cal)...)
		}
	}
	return frags
}
