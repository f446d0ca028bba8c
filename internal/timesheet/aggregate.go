package timesheet

import (
	"sort"
	"time"
)

// BucketTotal is one premium bucket's aggregate: the summed duration plus the
// full per-date fragment detail for drill-down.
type BucketTotal struct {
	Total  time.Duration
	ByDate map[string][]Fragment // ISO date -> fragments, each list sorted by shift start
}

// Dates returns the bucket's dates in ascending order; iteration over ByDate
// must always go through this to stay deterministic.
func (b BucketTotal) Dates() []string {
	dates := make([]string, 0, len(b.ByDate))
	for d := range b.ByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Overtime is the aggregated result of classifying one employee's shifts over
// a date range.
type Overtime struct {
	Premium50  BucketTotal
	Premium100 BucketTotal
}

// Aggregate sums fragments into per-bucket totals and detail listings. Pure
// bookkeeping: no rule logic lives here. Fragment detail is ordered by
// (date, originating shift start) regardless of input order.
func Aggregate(frags []Fragment) Overtime {
	ot := Overtime{
		Premium50:  BucketTotal{ByDate: map[string][]Fragment{}},
		Premium100: BucketTotal{ByDate: map[string][]Fragment{}},
	}

	for _, f := range frags {
		switch f.Bucket {
		case Premium50:
			ot.Premium50.Total += f.Duration
			key := dateKey(f.Date)
			ot.Premium50.ByDate[key] = append(ot.Premium50.ByDate[key], f)
		case Premium100:
			ot.Premium100.Total += f.Duration
			key := dateKey(f.Date)
			ot.Premium100.ByDate[key] = append(ot.Premium100.ByDate[key], f)
		}
	}

	for _, bucket := range []map[string][]Fragment{ot.Premium50.ByDate, ot.Premium100.ByDate} {
		for _, list := range bucket {
			sort.SliceStable(list, func(i, j int) bool {
				return list[i].ShiftStart.Before(list[j].ShiftStart)
			})
		}
	}

	return ot
}

// ComputeOvertime is the full pipeline for one employee: pair, split,
// classify, aggregate.
func ComputeOvertime(events []Event, cal HolidayCalendar) (Overtime, error) {
	sessions, err := Pair(events)
	if err != nil {
		return Overtime{}, err
	}
	return Aggregate(ClassifyShifts(Shifts(sessions), cal)), nil
}
