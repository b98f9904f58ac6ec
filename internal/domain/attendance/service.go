package attendance

import (
	"context"

	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
)

// AttendanceService defines business logic for attendance marking and
// monthly summaries.
type AttendanceService interface {
	// MarkAttendance creates or replaces the record for (employee, date).
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single record by ID.
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListMonth lists one employee's records for a month.
	ListMonth(ctx context.Context, filter MonthFilter) ([]AttendanceResponse, error)

	// ListDay lists every record for one date (YYYY-MM-DD).
	ListDay(ctx context.Context, date string) ([]AttendanceResponse, error)

	// DeleteAttendance removes a record; the day reverts to not-marked.
	DeleteAttendance(ctx context.Context, id string) error

	// MonthlySummary aggregates one employee's month against the current
	// work calendar.
	MonthlySummary(ctx context.Context, filter MonthFilter) (payroll.MonthlyAttendanceSummary, error)
}
