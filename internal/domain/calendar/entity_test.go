package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func monFri() []time.Weekday {
	return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInMonth(c.year, c.month), "DaysInMonth(%d, %s)", c.year, c.month)
	}
}

func TestWorkingDaysInMonth(t *testing.T) {
	// April 2024: 30 days, 22 weekdays Mon-Fri
	s := Settings{WorkingWeekdays: monFri()}
	assert.Equal(t, 22, s.WorkingDaysInMonth(2024, time.April))

	// Adding a holiday on a Tuesday removes one working day
	s.Holidays = []Holiday{{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"}}
	assert.Equal(t, 21, s.WorkingDaysInMonth(2024, time.April))

	// A holiday on a Sunday changes nothing
	s.Holidays = append(s.Holidays, Holiday{Date: time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC), Name: "Sunday holiday"})
	assert.Equal(t, 21, s.WorkingDaysInMonth(2024, time.April))
}

func TestWorkingDaysInMonth_NoWorkingWeekdays(t *testing.T) {
	s := Settings{}
	assert.Equal(t, 0, s.WorkingDaysInMonth(2024, time.April))
}

func TestIsWorkingDay(t *testing.T) {
	s := Settings{
		WorkingWeekdays: monFri(),
		Holidays:        []Holiday{{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"}},
	}

	assert.True(t, s.IsWorkingDay(time.Date(2024, time.April, 8, 0, 0, 0, 0, time.UTC)))   // Monday
	assert.False(t, s.IsWorkingDay(time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, s.IsWorkingDay(time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC)))  // holiday
	assert.True(t, s.IsWorkingDay(time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)))  // Wednesday
}

func TestIsHoliday_IgnoresTimeComponent(t *testing.T) {
	s := Settings{
		WorkingWeekdays: monFri(),
		Holidays:        []Holiday{{Date: time.Date(2024, time.April, 9, 15, 4, 5, 0, time.UTC), Name: "Eid"}},
	}
	assert.True(t, s.IsHoliday(time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC)))
}

func TestHolidaysInMonth(t *testing.T) {
	s := Settings{
		WorkingWeekdays: monFri(),
		Holidays: []Holiday{
			{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"},       // Tuesday
			{Date: time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC), Name: "Sunday"},    // non-working weekday
			{Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), Name: "Labour Day"},  // other month
		},
	}
	assert.Equal(t, 1, s.HolidaysInMonth(2024, time.April))
	assert.Equal(t, 1, s.HolidaysInMonth(2024, time.May))
	assert.Equal(t, 0, s.HolidaysInMonth(2024, time.June))
}

func TestValidateWeekdays(t *testing.T) {
	assert.NoError(t, ValidateWeekdays(monFri()))
	assert.NoError(t, ValidateWeekdays([]time.Weekday{time.Sunday}))

	assert.ErrorIs(t, ValidateWeekdays(nil), ErrNoWorkingWeekdays)
	assert.ErrorIs(t, ValidateWeekdays([]time.Weekday{}), ErrNoWorkingWeekdays)
	assert.ErrorIs(t, ValidateWeekdays([]time.Weekday{time.Monday, time.Weekday(7)}), ErrInvalidWeekday)
	assert.ErrorIs(t, ValidateWeekdays([]time.Weekday{time.Weekday(-1)}), ErrInvalidWeekday)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Len(t, s.WorkingWeekdays, 6)
	assert.False(t, s.IsWorkingDay(time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC))) // Sunday off
	assert.True(t, s.IsWorkingDay(time.Date(2024, time.April, 6, 0, 0, 0, 0, time.UTC)))  // Saturday on
}
