package payroll

import (
	"context"
	"time"
)

// SalaryRepository defines data access methods for stored salary records.
type SalaryRepository interface {
	// Create inserts a salary record. Returns ErrSalaryRecordExists when a
	// record for (employee, year, month) already exists.
	Create(ctx context.Context, rec SalaryRecord) (SalaryRecord, error)

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, id string) (SalaryRecord, error)

	// GetByEmployeePeriod retrieves the record for (employee, year, month).
	GetByEmployeePeriod(ctx context.Context, employeeID string, year int, month time.Month) (SalaryRecord, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter SalaryFilter) ([]SalaryRecord, int64, error)

	// UpdateBreakdown overwrites the frozen breakdown and inputs of a
	// still-pending record.
	UpdateBreakdown(ctx context.Context, rec SalaryRecord) (SalaryRecord, error)

	// UpdateStatus moves a record through the pending → approved → paid flow.
	UpdateStatus(ctx context.Context, id string, status SalaryStatus, paidAt *time.Time) error

	// Delete removes a pending record.
	Delete(ctx context.Context, id string) error
}
