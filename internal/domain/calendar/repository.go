package calendar

import (
	"context"
	"time"
)

// SettingsRepository defines data access for the work calendar.
type SettingsRepository interface {
	// Get retrieves the calendar settings. Returns ErrSettingsNotFound when
	// the garage has never saved one.
	Get(ctx context.Context) (Settings, error)

	// UpsertWeekdays replaces the working weekday set.
	UpsertWeekdays(ctx context.Context, weekdays []time.Weekday) (Settings, error)

	// AddHoliday inserts a holiday. Returns ErrDuplicateHoliday when the date
	// is already taken.
	AddHoliday(ctx context.Context, holiday Holiday) error

	// RemoveHoliday deletes the holiday on the given date.
	RemoveHoliday(ctx context.Context, date time.Time) error
}
