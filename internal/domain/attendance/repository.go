package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for daily attendance
// records.
type AttendanceRepository interface {
	// Upsert creates or replaces the record for (employee, date). The
	// one-record-per-day invariant is enforced here.
	Upsert(ctx context.Context, rec DailyRecord) (DailyRecord, error)

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, id string) (DailyRecord, error)

	// ListByEmployeeMonth retrieves all records for one employee in one month.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]DailyRecord, error)

	// ListByDate retrieves every employee's record for one date.
	ListByDate(ctx context.Context, date time.Time) ([]DailyRecord, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}
