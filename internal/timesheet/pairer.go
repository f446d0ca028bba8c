package timesheet

import (
	"errors"
	"sort"
)

// ErrMixedEmployees is a usage-contract violation: the pairer operates on a
// single employee's events and callers must pre-filter. It is distinct from
// bad punch data, which is tolerated and routed around.
var ErrMixedEmployees = errors.New("timesheet: events for more than one employee")

// Pair groups a single employee's punch events into work sessions with one
// left-to-right scan and greedy longest-match lookahead:
//
//  1. ENTRADA immediately followed by SAIDA: one shift.
//  2. ENTRADA, PAUSA, RETORNO, SAIDA exactly contiguous: two shifts
//     (before and after the break); the break itself is never worked time.
//  3. Any other ENTRADA: an incomplete session, advanced past by one.
//  4. Any non-ENTRADA event in scanning position is skipped; it is either
//     the tail of a consumed pattern or an orphan with no matching start.
//
// Events are sorted by timestamp before scanning, so the result is
// deterministic for any input order. No event is ever matched twice.
func Pair(events []Event) ([]Session, error) {
	if len(events) == 0 {
		return nil, nil
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At.Before(sorted[j].At) })

	employee := sorted[0].Employee
	for _, ev := range sorted[1:] {
		if ev.Employee != employee {
			return nil, ErrMixedEmployees
		}
	}

	var sessions []Session
	i := 0
	for i < len(sorted) {
		ev := sorted[i]
		if ev.Action != ActionStart {
			i++
			continue
		}

		switch {
		case i+1 < len(sorted) && sorted[i+1].Action == ActionEnd:
			sessions = append(sessions, Session{
				Start:  ev.At,
				Shifts: []Shift{{Start: ev.At, End: sorted[i+1].At}},
			})
			i += 2

		case i+3 < len(sorted) &&
			sorted[i+1].Action == ActionPause &&
			sorted[i+2].Action == ActionResume &&
			sorted[i+3].Action == ActionEnd:
			sessions = append(sessions, Session{
				Start: ev.At,
				Shifts: []Shift{
					{Start: ev.At, End: sorted[i+1].At},
					{Start: sorted[i+2].At, End: sorted[i+3].At},
				},
			})
			i += 4

		default:
			sessions = append(sessions, Session{Start: ev.At, Incomplete: true})
			i++
		}
	}

	return sessions, nil
}

// Shifts flattens sessions into the shift list fed to the classifier.
// Incomplete sessions contribute nothing: their end is unknown.
func Shifts(sessions []Session) []Shift {
	var shifts []Shift
	for _, s := range sessions {
		shifts = append(shifts, s.Shifts...)
	}
	return shifts
}

// IncompleteRecord is the sentinel rendered in worked-hours listings for a
// dangling ENTRADA with no resolvable end.
const IncompleteRecord = "Registro Incompleto"

// WorkedEntry is one row of the worked-hours report: the session's start date
// and its duration as HH:MM, or the IncompleteRecord sentinel.
type WorkedEntry struct {
	Date   string
	Worked string
}

// WorkedHours computes the per-session worked-hours listing for a single
// employee's events.
func WorkedHours(events []Event) ([]WorkedEntry, error) {
	sessions, err := Pair(events)
	if err != nil {
		return nil, err
	}

	entries := make([]WorkedEntry, 0, len(sessions))
	for _, s := range sessions {
		entry := WorkedEntry{Date: dateKey(s.Start)}
		if s.Incomplete {
			entry.Worked = IncompleteRecord
		} else {
			entry.Worked = FormatDuration(s.Worked())
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
