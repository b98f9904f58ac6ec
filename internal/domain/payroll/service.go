package payroll

import "context"

// PayrollService defines business logic for salary generation and the
// approval workflow.
type PayrollService interface {
	// PreviewBreakdown runs the full aggregate-and-compute pipeline without
	// persisting anything.
	PreviewBreakdown(ctx context.Context, req GenerateSalaryRequest) (SalaryRecordResponse, error)

	// GenerateSalaryRecord computes and persists a pending salary record.
	GenerateSalaryRecord(ctx context.Context, req GenerateSalaryRequest) (SalaryRecordResponse, error)

	// GetSalaryRecord retrieves a stored record.
	GetSalaryRecord(ctx context.Context, id string) (SalaryRecordResponse, error)

	// ListSalaryRecords retrieves records with filters and pagination.
	ListSalaryRecords(ctx context.Context, filter SalaryFilter) (ListSalaryRecordResponse, error)

	// RecalculateSalaryRecord re-runs the canonical formula over current
	// attendance and calendar data. Pending records only.
	RecalculateSalaryRecord(ctx context.Context, id string) (SalaryRecordResponse, error)

	// ApproveSalaryRecord moves pending → approved.
	ApproveSalaryRecord(ctx context.Context, id string) (SalaryRecordResponse, error)

	// MarkSalaryRecordPaid moves approved → paid and stamps PaidAt.
	MarkSalaryRecordPaid(ctx context.Context, id string) (SalaryRecordResponse, error)

	// DeleteSalaryRecord removes a pending record.
	DeleteSalaryRecord(ctx context.Context, id string) error
}
