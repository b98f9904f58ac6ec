package payroll

import (
	"time"

	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AllowancesRequest struct {
	DA    decimal.Decimal `json:"da"`
	HRA   decimal.Decimal `json:"hra"`
	Other decimal.Decimal `json:"other"`
}

type DeductionsRequest struct {
	IncomeTax     decimal.Decimal `json:"income_tax"`
	ProvidentFund decimal.Decimal `json:"provident_fund"`
	Other         decimal.Decimal `json:"other"`
}

// GenerateSalaryRequest asks for a salary record for (employee, year, month).
type GenerateSalaryRequest struct {
	EmployeeID      string            `json:"employee_id"`
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	Allowances      AllowancesRequest `json:"allowances"`
	Deductions      DeductionsRequest `json:"deductions"`
	IncludeHolidays bool              `json:"include_holidays"`
	OtherAllowance  decimal.Decimal   `json:"other_allowance_amount"`
	OtherDeductions decimal.Decimal   `json:"other_deductions_amount"`
	Notes           *string           `json:"notes,omitempty"`
}

func (r *GenerateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	for field, amount := range map[string]decimal.Decimal{
		"allowances.da":             r.Allowances.DA,
		"allowances.hra":            r.Allowances.HRA,
		"allowances.other":          r.Allowances.Other,
		"deductions.income_tax":     r.Deductions.IncomeTax,
		"deductions.provident_fund": r.Deductions.ProvidentFund,
		"deductions.other":          r.Deductions.Other,
		"other_allowance_amount":    r.OtherAllowance,
		"other_deductions_amount":   r.OtherDeductions,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	EmployeeID            string          `json:"employee_id"`
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	TotalPresentDays      decimal.Decimal `json:"total_present_days"`
	TotalAbsentPaidDays   int             `json:"total_absent_paid_days"`
	TotalAbsentUnpaidDays int             `json:"total_absent_unpaid_days"`
	TotalPaidLeaveDays    int             `json:"total_paid_leave_days"`
	TotalUnpaidLeaveDays  int             `json:"total_unpaid_leave_days"`
	TotalNotMarkedDays    int             `json:"total_not_marked_days"`
}

type BreakdownResponse struct {
	WorkingDaysInMonth int             `json:"working_days_in_month"`
	PerDaySalary       decimal.Decimal `json:"per_day_salary"`
	TotalPayableDays   decimal.Decimal `json:"total_payable_days"`
	HolidayDaysPaid    int             `json:"holiday_days_paid"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	AbsenceDeduction   decimal.Decimal `json:"absence_deduction"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	OtherAllowance     decimal.Decimal `json:"other_allowance_amount"`
	OtherDeductions    decimal.Decimal `json:"other_deductions_amount"`
	NetSalary          decimal.Decimal `json:"net_salary"`
}

type SalaryRecordResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name,omitempty"`
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	BaseSalary   decimal.Decimal   `json:"base_salary"`
	Summary      SummaryResponse   `json:"summary"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	Status       string            `json:"status"`
	PaidAt       *string           `json:"paid_at,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
}

type SalaryFilter struct {
	Year       *int
	Month      *int
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
}

type ListSalaryRecordResponse struct {
	Data       []SalaryRecordResponse `json:"data"`
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}

func ToSummaryResponse(s MonthlyAttendanceSummary) SummaryResponse {
	return SummaryResponse{
		EmployeeID:            s.EmployeeID,
		Year:                  s.Year,
		Month:                 int(s.Month),
		TotalPresentDays:      s.TotalPresentDays,
		TotalAbsentPaidDays:   s.TotalAbsentPaidDays,
		TotalAbsentUnpaidDays: s.TotalAbsentUnpaidDays,
		TotalPaidLeaveDays:    s.TotalPaidLeaveDays,
		TotalUnpaidLeaveDays:  s.TotalUnpaidLeaveDays,
		TotalNotMarkedDays:    s.TotalNotMarkedDays,
	}
}

func ToBreakdownResponse(b SalaryBreakdown) BreakdownResponse {
	return BreakdownResponse{
		WorkingDaysInMonth: b.WorkingDaysInMonth,
		PerDaySalary:       b.PerDaySalary,
		TotalPayableDays:   b.TotalPayableDays,
		HolidayDaysPaid:    b.HolidayDaysPaid,
		GrossSalary:        b.GrossSalary,
		AbsenceDeduction:   b.AbsenceDeduction,
		TotalDeductions:    b.TotalDeductions,
		OtherAllowance:     b.OtherAllowance,
		OtherDeductions:    b.OtherDeductions,
		NetSalary:          b.NetSalary,
	}
}

func ToSalaryRecordResponse(r SalaryRecord) SalaryRecordResponse {
	var paidAtStr *string
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		paidAtStr = &str
	}

	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}

	return SalaryRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		Year:         r.Year,
		Month:        int(r.Month),
		BaseSalary:   r.BaseSalary,
		Summary:      ToSummaryResponse(r.Summary),
		Breakdown:    ToBreakdownResponse(r.Breakdown),
		Status:       string(r.Status),
		PaidAt:       paidAtStr,
		Notes:        r.Notes,
	}
}
