package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAttendanceSummary is the aggregator's output for one employee and
// one month. Only working days (per the calendar settings) are counted; the
// six buckets exactly partition the working days of the month.
type MonthlyAttendanceSummary struct {
	EmployeeID            string
	Year                  int
	Month                 time.Month
	TotalPresentDays      decimal.Decimal
	TotalAbsentPaidDays   int
	TotalAbsentUnpaidDays int
	TotalPaidLeaveDays    int
	TotalUnpaidLeaveDays  int
	TotalNotMarkedDays    int
}

// Allowances are the itemized monthly allowances on top of base salary.
type Allowances struct {
	DA    decimal.Decimal
	HRA   decimal.Decimal
	Other decimal.Decimal
}

func (a Allowances) Total() decimal.Decimal {
	return a.DA.Add(a.HRA).Add(a.Other)
}

// Deductions are the itemized monthly deductions. The unpaid-absence
// deduction is computed separately and is not part of this struct.
type Deductions struct {
	IncomeTax     decimal.Decimal
	ProvidentFund decimal.Decimal
	Other         decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return d.IncomeTax.Add(d.ProvidentFund).Add(d.Other)
}

// SalaryBreakdown is the calculator's output: every derived figure of one
// employee's salary for one month.
type SalaryBreakdown struct {
	EmployeeID         string
	Year               int
	Month              time.Month
	WorkingDaysInMonth int
	PerDaySalary       decimal.Decimal
	TotalPayableDays   decimal.Decimal
	HolidayDaysPaid    int
	GrossSalary        decimal.Decimal
	AbsenceDeduction   decimal.Decimal
	TotalDeductions    decimal.Decimal
	OtherAllowance     decimal.Decimal
	OtherDeductions    decimal.Decimal
	NetSalary          decimal.Decimal
}

// SalaryStatus is the approval workflow state of a stored salary record.
type SalaryStatus string

const (
	SalaryStatusPending  SalaryStatus = "pending"
	SalaryStatusApproved SalaryStatus = "approved"
	SalaryStatusPaid     SalaryStatus = "paid"
)

// SalaryRecord is a persisted salary calculation: the breakdown frozen at
// generation time, plus the inputs needed to re-run it and the workflow
// state. Unique per (employee, year, month).
type SalaryRecord struct {
	ID              string
	EmployeeID      string
	Year            int
	Month           time.Month
	BaseSalary      decimal.Decimal
	Summary         MonthlyAttendanceSummary
	Allowances      Allowances
	Deductions      Deductions
	IncludeHolidays bool
	Breakdown       SalaryBreakdown
	Status          SalaryStatus
	PaidAt          *time.Time
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
