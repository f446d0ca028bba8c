// Package timesheet interprets raw punch events under CLT-style shift rules:
// it pairs events into shifts, splits shifts across calendar days and
// classifies every worked minute into regular time, 50%-premium or
// 100%-premium overtime. The package performs no I/O; all inputs arrive as
// in-memory values and every function is a pure computation.
package timesheet

import (
	"fmt"
	"time"
)

// Action is the closed set of punch tokens. Membership is validated at the
// admission boundary (punch service, device-feed consumer), never inside the
// classifier.
type Action string

const (
	ActionStart  Action = "ENTRADA"
	ActionPause  Action = "PAUSA"
	ActionResume Action = "RETORNO"
	ActionEnd    Action = "SAIDA"
)

// ParseAction validates a wire token against the closed action set.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionStart, ActionPause, ActionResume, ActionEnd:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown punch action %q", s)
	}
}

// Event is one punch for one employee at minute resolution.
type Event struct {
	Employee string
	Action   Action
	At       time.Time
}

// Shift is one continuous worked interval. Invariant: Start < End.
type Shift struct {
	Start time.Time
	End   time.Time
}

func (s Shift) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Session is one matched pairing pattern: either one shift (ENTRADA→SAIDA),
// two shifts around a lunch break (ENTRADA→PAUSA→RETORNO→SAIDA), or a dangling
// ENTRADA marked incomplete. Incomplete sessions carry no shifts and are
// excluded from overtime classification.
type Session struct {
	Start      time.Time
	Shifts     []Shift
	Incomplete bool
}

// Worked is the session's total worked duration, zero for incomplete sessions.
func (s Session) Worked() time.Duration {
	var total time.Duration
	for _, sh := range s.Shifts {
		total += sh.Duration()
	}
	return total
}

// DaySpan is the portion of a shift confined to a single calendar day,
// half-open [Start, End).
type DaySpan struct {
	Date  time.Time // midnight of the day
	Start time.Time
	End   time.Time
}

// Bucket is the overtime premium category.
type Bucket string

const (
	Premium50  Bucket = "50%"
	Premium100 Bucket = "100%"
)

// DayPart labels the time of day a fragment starts in.
type DayPart string

const (
	DayPartDawn      DayPart = "Madrugada" // [00:00, 05:00)
	DayPartMorning   DayPart = "Manhã"     // [05:00, 12:00)
	DayPartAfternoon DayPart = "Tarde"     // [12:00, 18:00)
	DayPartNight     DayPart = "Noite"     // [18:00, 24:00)
)

// PartOfDay classifies a clock time into its day part.
func PartOfDay(t time.Time) DayPart {
	switch h := t.Hour(); {
	case h < 5:
		return DayPartDawn
	case h < 12:
		return DayPartMorning
	case h < 18:
		return DayPartAfternoon
	default:
		return DayPartNight
	}
}

// Fragment is a classified sub-interval of a shift: one calendar day, one
// premium bucket. Regular time is never materialized as fragments; only
// premium time is reported.
type Fragment struct {
	Date       time.Time
	Duration   time.Duration
	ShiftStart time.Time // start of the originating shift, for drill-down context
	DayPart    DayPart
	Bucket     Bucket
}

// HolidayCalendar answers whether a date counts as a holiday for rule
// purposes. Implementations must be safe for concurrent use.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// RosterEntry is one active employee as supplied by the roster provider.
type RosterEntry struct {
	Name string
	Role string
}

const (
	// DateLayout and TimeLayout are the wire forms for punch rows; dates stay
	// ISO everywhere inside the engine to avoid locale ambiguity.
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseEvent builds an Event from wire fields, rejecting malformed actions or
// timestamps. Callers skip rejected rows rather than aborting the computation.
func ParseEvent(employee, action, date, clock string) (Event, error) {
	act, err := ParseAction(action)
	if err != nil {
		return Event{}, err
	}
	at, err := time.Parse(dateTimeLayout, date+" "+clock)
	if err != nil {
		return Event{}, fmt.Errorf("malformed punch timestamp %q %q: %w", date, clock, err)
	}
	return Event{Employee: employee, Action: act, At: at}, nil
}

// FormatDuration renders a duration as HH:MM, truncating (never rounding)
// seconds. Hours may exceed 24.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dateKey(t time.Time) string {
	return t.Format(DateLayout)
}
