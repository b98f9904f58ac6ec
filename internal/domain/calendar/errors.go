package calendar

import "errors"

// Calendar domain errors
var (
	ErrNoWorkingWeekdays  = errors.New("calendar must have at least one working weekday")
	ErrDuplicateHoliday   = errors.New("holiday already exists on this date")
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrSettingsNotFound   = errors.New("calendar settings not found")
	ErrInvalidWeekday     = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidICSCalendar = errors.New("could not parse iCalendar data")
)
