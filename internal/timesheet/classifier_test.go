package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeCalendar marks the listed dates as holidays.
type fakeCalendar map[string]bool

func (c fakeCalendar) IsHoliday(date time.Time) bool {
	return c[date.Format(DateLayout)]
}

func computeFor(t *testing.T, cal HolidayCalendar, punches ...[3]string) Overtime {
	t.Helper()
	events := make([]Event, len(punches))
	for i, p := range punches {
		events[i] = mustEvent(t, "ana", p[0], p[1], p[2])
	}
	overtime, err := ComputeOvertime(events, cal)
	assert.NoError(t, err)
	return overtime
}

func TestComputeOvertime_RegularWeekday(t *testing.T) {
	// 2024-06-03 is a Monday. Whole shift inside 07:00-17:00.
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-03", "07:00"},
		[3]string{"PAUSA", "2024-06-03", "12:00"},
		[3]string{"RETORNO", "2024-06-03", "13:00"},
		[3]string{"SAIDA", "2024-06-03", "17:00"},
	)

	assert.Zero(t, overtime.Premium50.Total)
	assert.Zero(t, overtime.Premium100.Total)
	assert.Empty(t, overtime.Premium50.ByDate)
	assert.Empty(t, overtime.Premium100.ByDate)
}

func TestComputeOvertime_FridayEvening(t *testing.T) {
	// 2024-06-07 is a Friday; the threshold drops to 16:00.
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-07", "07:00"},
		[3]string{"PAUSA", "2024-06-07", "12:00"},
		[3]string{"RETORNO", "2024-06-07", "13:00"},
		[3]string{"SAIDA", "2024-06-07", "18:00"},
	)

	assert.Equal(t, 2*time.Hour, overtime.Premium50.Total)
	assert.Zero(t, overtime.Premium100.Total)

	frags := overtime.Premium50.ByDate["2024-06-07"]
	assert.Len(t, frags, 1)
	assert.Equal(t, 2*time.Hour, frags[0].Duration)
	assert.Equal(t, "13:00", frags[0].ShiftStart.Format(TimeLayout))
	assert.Equal(t, DayPartAfternoon, frags[0].DayPart)
}

func TestComputeOvertime_Saturday(t *testing.T) {
	// 2024-06-08 is a Saturday: every worked minute is 50%-premium.
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-08", "08:00"},
		[3]string{"SAIDA", "2024-06-08", "12:00"},
	)

	assert.Equal(t, 4*time.Hour, overtime.Premium50.Total)
	assert.Zero(t, overtime.Premium100.Total)
}

func TestComputeOvertime_SaturdayEarlyStart(t *testing.T) {
	// Pre-07:00 work and the Saturday rule both land in the same bucket,
	// so an early Saturday still totals the full interval.
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-08", "06:00"},
		[3]string{"SAIDA", "2024-06-08", "12:00"},
	)

	assert.Equal(t, 6*time.Hour, overtime.Premium50.Total)
}

func TestComputeOvertime_Sunday(t *testing.T) {
	// 2024-06-09 is a Sunday.
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-09", "08:00"},
		[3]string{"SAIDA", "2024-06-09", "12:00"},
	)

	assert.Zero(t, overtime.Premium50.Total)
	assert.Equal(t, 4*time.Hour, overtime.Premium100.Total)
}

func TestComputeOvertime_Holiday(t *testing.T) {
	overtime := computeFor(t, fakeCalendar{"2024-06-05": true},
		[3]string{"ENTRADA", "2024-06-05", "08:00"},
		[3]string{"SAIDA", "2024-06-05", "17:00"},
	)

	assert.Zero(t, overtime.Premium50.Total)
	assert.Equal(t, 9*time.Hour, overtime.Premium100.Total)
}

func TestComputeOvertime_OvernightThursdayToFriday(t *testing.T) {
	// Thu 18:00 to Fri 06:00: both halves are 50%-premium for different
	// reasons (past 17:00, then before 07:00).
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-06", "18:00"},
		[3]string{"SAIDA", "2024-06-07", "06:00"},
	)

	assert.Equal(t, 12*time.Hour, overtime.Premium50.Total)
	assert.Zero(t, overtime.Premium100.Total)

	thu := overtime.Premium50.ByDate["2024-06-06"]
	fri := overtime.Premium50.ByDate["2024-06-07"]
	assert.Len(t, thu, 1)
	assert.Len(t, fri, 1)
	assert.Equal(t, 6*time.Hour, thu[0].Duration)
	assert.Equal(t, 6*time.Hour, fri[0].Duration)
	assert.Equal(t, DayPartNight, thu[0].DayPart)
	assert.Equal(t, DayPartDawn, fri[0].DayPart)

	// Both fragments trace back to the Thursday shift start.
	assert.Equal(t, thu[0].ShiftStart, fri[0].ShiftStart)
}

func TestComputeOvertime_IncompleteContributesNothing(t *testing.T) {
	overtime := computeFor(t, fakeCalendar{},
		[3]string{"ENTRADA", "2024-06-03", "08:00"},
	)

	assert.Zero(t, overtime.Premium50.Total)
	assert.Zero(t, overtime.Premium100.Total)
}

func TestSplitByDay_Conservation(t *testing.T) {
	base := time.Date(2024, 6, 6, 18, 0, 0, 0, time.UTC)
	cases := []Shift{
		{Start: base, End: base.Add(2 * time.Hour)},
		{Start: base, End: base.Add(12 * time.Hour)},
		{Start: base, End: base.Add(53 * time.Hour)},
		{Start: base, End: base.Add(37*time.Minute + 13*time.Hour)},
	}

	for _, sh := range cases {
		spans := SplitByDay(sh)
		var total time.Duration
		for _, span := range spans {
			assert.True(t, span.Start.Before(span.End))
			total += span.End.Sub(span.Start)
		}
		assert.Equal(t, sh.Duration(), total)
	}
}

func TestClassify_BucketDisjointness(t *testing.T) {
	// Premium fragments never overlap and never exceed the span.
	span := DaySpan{
		Date:  time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
		Start: time.Date(2024, 6, 7, 5, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 7, 20, 0, 0, 0, time.UTC),
	}

	frags := Classify(span, span.Start, fakeCalendar{})

	var premium time.Duration
	for _, f := range frags {
		premium += f.Duration
	}
	// 05:00-07:00 plus 16:00-20:00 on a Friday.
	assert.Equal(t, 6*time.Hour, premium)
	assert.LessOrEqual(t, premium, span.End.Sub(span.Start))
}

func TestPartOfDay_Boundaries(t *testing.T) {
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, DayPartDawn, PartOfDay(day))
	assert.Equal(t, DayPartDawn, PartOfDay(day.Add(4*time.Hour+59*time.Minute)))
	assert.Equal(t, DayPartMorning, PartOfDay(day.Add(5*time.Hour)))
	assert.Equal(t, DayPartMorning, PartOfDay(day.Add(11*time.Hour+59*time.Minute)))
	assert.Equal(t, DayPartAfternoon, PartOfDay(day.Add(12*time.Hour)))
	assert.Equal(t, DayPartAfternoon, PartOfDay(day.Add(17*time.Hour+59*time.Minute)))
	assert.Equal(t, DayPartNight, PartOfDay(day.Add(18*time.Hour)))
	assert.Equal(t, DayPartNight, PartOfDay(day.Add(23*time.Hour+59*time.Minute)))
}
