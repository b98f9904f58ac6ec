package calendar

import (
	"time"
)

// Holiday is a single non-working date in the garage calendar.
type Holiday struct {
	Date time.Time
	Name string
}

// Settings is the garage work calendar: which weekdays are working days and
// which dates are holidays. It is loaded per call and never mutated by the
// payroll engine; the admin owns it.
type Settings struct {
	ID              string
	WorkingWeekdays []time.Weekday
	Holidays        []Holiday
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultSettings returns the calendar used before the admin configures one:
// Monday through Saturday working, no holidays.
func DefaultSettings() Settings {
	return Settings{
		WorkingWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		},
	}
}

// ValidateWeekdays checks a working-weekday set before it is persisted.
func ValidateWeekdays(weekdays []time.Weekday) error {
	if len(weekdays) == 0 {
		return ErrNoWorkingWeekdays
	}
	for _, w := range weekdays {
		if w < time.Sunday || w > time.Saturday {
			return ErrInvalidWeekday
		}
	}
	return nil
}

// DateKey normalizes a timestamp to its calendar date in UTC, the form every
// attendance and holiday comparison uses.
func DateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s Settings) isWorkingWeekday(d time.Weekday) bool {
	for _, w := range s.WorkingWeekdays {
		if w == d {
			return true
		}
	}
	return false
}

// IsHoliday reports whether date falls on a configured holiday.
func (s Settings) IsHoliday(date time.Time) bool {
	key := DateKey(date)
	for _, h := range s.Holidays {
		if DateKey(h.Date).Equal(key) {
			return true
		}
	}
	return false
}

// IsWorkingDay reports whether date is a working day: its weekday is in the
// working set and it is not a holiday.
func (s Settings) IsWorkingDay(date time.Time) bool {
	return s.isWorkingWeekday(date.Weekday()) && !s.IsHoliday(date)
}

// DaysInMonth returns the number of calendar days in (year, month).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WorkingDaysInMonth counts the working days in (year, month).
func (s Settings) WorkingDaysInMonth(year int, month time.Month) int {
	count := 0
	for day := 1; day <= DaysInMonth(year, month); day++ {
		if s.IsWorkingDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)) {
			count++
		}
	}
	return count
}

// HolidaysInMonth counts configured holidays that land inside (year, month)
// on an otherwise-working weekday. Holidays on non-working weekdays carry no
// pay weight, so they are not counted.
func (s Settings) HolidaysInMonth(year int, month time.Month) int {
	count := 0
	for _, h := range s.Holidays {
		d := DateKey(h.Date)
		if d.Year() == year && d.Month() == month && s.isWorkingWeekday(d.Weekday()) {
			count++
		}
	}
	return count
}
