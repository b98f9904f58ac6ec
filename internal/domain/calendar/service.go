package calendar

import (
	"context"
	"io"
)

// SettingsService defines business logic for the work calendar.
type SettingsService interface {
	// GetSettings returns the stored calendar, or DefaultSettings when none
	// has been saved yet.
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateWeekdays replaces the working weekday set.
	UpdateWeekdays(ctx context.Context, req UpdateWeekdaysRequest) (SettingsResponse, error)

	// AddHoliday adds a single holiday.
	AddHoliday(ctx context.Context, req AddHolidayRequest) (SettingsResponse, error)

	// RemoveHoliday removes the holiday on a date (YYYY-MM-DD).
	RemoveHoliday(ctx context.Context, date string) (SettingsResponse, error)

	// ImportHolidays reads an iCalendar stream and adds each all-day event as
	// a holiday. Dates already present are skipped, not errors.
	ImportHolidays(ctx context.Context, ics io.Reader) (ImportHolidaysResponse, error)
}
