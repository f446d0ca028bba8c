package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustEvent(t *testing.T, employee, action, date, clock string) Event {
	t.Helper()
	ev, err := ParseEvent(employee, action, date, clock)
	assert.NoError(t, err)
	return ev
}

func TestPair_SimplePair(t *testing.T) {
	events := []Event{
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "08:00"),
		mustEvent(t, "ana", "SAIDA", "2024-06-03", "12:00"),
	}

	sessions, err := Pair(events)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.False(t, sessions[0].Incomplete)
	assert.Len(t, sessions[0].Shifts, 1)
	assert.Equal(t, 4*time.Hour, sessions[0].Worked())
}

func TestPair_FourPunchPattern(t *testing.T) {
	events := []Event{
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "08:00"),
		mustEvent(t, "ana", "PAUSA", "2024-06-03", "12:00"),
		mustEvent(t, "ana", "RETORNO", "2024-06-03", "13:00"),
		mustEvent(t, "ana", "SAIDA", "2024-06-03", "17:00"),
	}

	sessions, err := Pair(events)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Shifts, 2)
	assert.Equal(t, 4*time.Hour, sessions[0].Shifts[0].Duration())
	assert.Equal(t, 4*time.Hour, sessions[0].Shifts[1].Duration())
	assert.Equal(t, 8*time.Hour, sessions[0].Worked())
}

func TestPair_IncompleteSession(t *testing.T) {
	events := []Event{
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "08:00"),
	}

	sessions, err := Pair(events)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.True(t, sessions[0].Incomplete)
	assert.Empty(t, sessions[0].Shifts)
}

func TestPair_StrayEventSkipped(t *testing.T) {
	// A SAIDA with no preceding ENTRADA is bad data, not an error.
	events := []Event{
		mustEvent(t, "ana", "SAIDA", "2024-06-03", "07:30"),
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "08:00"),
		mustEvent(t, "ana", "SAIDA", "2024-06-03", "12:00"),
	}

	sessions, err := Pair(events)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, 4*time.Hour, sessions[0].Worked())
}

func TestPair_MixedEmployees(t *testing.T) {
	events := []Event{
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "08:00"),
		mustEvent(t, "bruno", "SAIDA", "2024-06-03", "12:00"),
	}

	_, err := Pair(events)
	assert.ErrorIs(t, err, ErrMixedEmployees)
}

func TestPair_Deterministic(t *testing.T) {
	// Same events presented out of order must produce identical output.
	ordered := []Event{
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "07:00"),
		mustEvent(t, "ana", "PAUSA", "2024-06-03", "12:00"),
		mustEvent(t, "ana", "RETORNO", "2024-06-03", "13:00"),
		mustEvent(t, "ana", "SAIDA", "2024-06-03", "17:00"),
	}
	shuffled := []Event{ordered[2], ordered[0], ordered[3], ordered[1]}

	a, err := Pair(ordered)
	assert.NoError(t, err)
	b, err := Pair(shuffled)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWorkedHours(t *testing.T) {
	events := []Event{
		mustEvent(t, "ana", "ENTRADA", "2024-06-03", "08:00"),
		mustEvent(t, "ana", "PAUSA", "2024-06-03", "12:00"),
		mustEvent(t, "ana", "RETORNO", "2024-06-03", "13:00"),
		mustEvent(t, "ana", "SAIDA", "2024-06-03", "17:00"),
		mustEvent(t, "ana", "ENTRADA", "2024-06-04", "08:00"),
	}

	entries, err := WorkedHours(events)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "2024-06-03", entries[0].Date)
	assert.Equal(t, "08:00", entries[0].Worked)
	assert.Equal(t, "2024-06-04", entries[1].Date)
	assert.Equal(t, IncompleteRecord, entries[1].Worked)
}
