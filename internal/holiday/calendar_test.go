package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rangeCal(custom, ignored map[string]string) *Calendar {
	return NewCalendar(date("2024-01-01"), date("2024-12-31"), custom, ignored)
}

func TestCalendar_AlgorithmicHoliday(t *testing.T) {
	cal := rangeCal(nil, nil)

	assert.True(t, cal.IsHoliday(date("2024-12-25")))
	assert.False(t, cal.IsHoliday(date("2024-06-03")))
}

func TestCalendar_CustomHoliday(t *testing.T) {
	cal := rangeCal(map[string]string{"2024-06-03": "Aniversário da empresa"}, nil)

	assert.True(t, cal.IsHoliday(date("2024-06-03")))

	desc, ok := cal.Describe(date("2024-06-03"))
	assert.True(t, ok)
	assert.Equal(t, "Aniversário da empresa", desc)
}

func TestCalendar_IgnoreSuppressesAlgorithmic(t *testing.T) {
	cal := rangeCal(nil, map[string]string{"2024-12-25": "expediente especial"})

	assert.False(t, cal.IsHoliday(date("2024-12-25")))
}

func TestCalendar_IgnoreNeverSuppressesCustom(t *testing.T) {
	cal := rangeCal(
		map[string]string{"2024-12-25": "Natal corporativo"},
		map[string]string{"2024-12-25": "expediente especial"},
	)

	assert.True(t, cal.IsHoliday(date("2024-12-25")))
}

func TestCalendar_IgnoreIsReversible(t *testing.T) {
	plain := rangeCal(nil, nil)
	ignored := rangeCal(nil, map[string]string{"2024-12-25": ""})
	restored := rangeCal(nil, nil)

	assert.True(t, plain.IsHoliday(date("2024-12-25")))
	assert.False(t, ignored.IsHoliday(date("2024-12-25")))
	assert.Equal(t, plain.IsHoliday(date("2024-12-25")), restored.IsHoliday(date("2024-12-25")))
}

func TestCalendar_CoversAdjacentYears(t *testing.T) {
	// Ranges are widened so overnight shifts near New Year still resolve.
	cal := rangeCal(nil, nil)

	assert.True(t, cal.IsHoliday(date("2025-01-01")))
	assert.True(t, cal.IsHoliday(date("2023-12-25")))
}
