package payroll

import "errors"

// Payroll domain errors
var (
	// ErrNoWorkingDays means the calendar resolves to zero working days for
	// the requested month. A salary cannot be derived from such a calendar;
	// the admin must fix the settings first.
	ErrNoWorkingDays = errors.New("month has no working days; check calendar settings")

	ErrSalaryRecordNotFound    = errors.New("salary record not found")
	ErrSalaryRecordExists      = errors.New("salary record already exists for this period")
	ErrSalaryRecordNotPending  = errors.New("salary record is no longer pending")
	ErrSalaryRecordNotApproved = errors.New("salary record is not approved")
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrNegativeBaseSalary      = errors.New("base salary must be non-negative")
)
