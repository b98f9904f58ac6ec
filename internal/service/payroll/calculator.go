package payroll

import (
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Calculator converts daily attendance records plus a work calendar into
// monthly totals and a salary breakdown. It is stateless and safe for
// concurrent use; every call gets its own inputs and returns a fresh value.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// minPayableDaysForHolidayPay gates holiday credit: an employee with fewer
// payable days than this gets no holiday pay even when the caller asks for
// it.
var minPayableDaysForHolidayPay = decimal.NewFromInt(7)

// Aggregate folds daily attendance records into the monthly summary for one
// employee. Records outside the target month or belonging to other employees
// are ignored, so callers do not need to pre-filter. Non-working dates
// (holidays, non-working weekdays) are excluded from every bucket; a working
// date with no record counts as not-marked. Missing or malformed records are
// never an error.
func (c *Calculator) Aggregate(
	employeeID string,
	year int,
	month time.Month,
	records []attendance.DailyRecord,
	cal calendar.Settings,
) payroll.MonthlyAttendanceSummary {
	// Index the employee's records for the target month by date. Later
	// records win if the caller violates the one-per-day invariant.
	byDate := make(map[time.Time]attendance.DailyRecord)
	for _, rec := range records {
		if rec.EmployeeID != employeeID {
			continue
		}
		key := calendar.DateKey(rec.Date)
		if key.Year() != year || key.Month() != month {
			continue
		}
		byDate[key] = rec
	}

	summary := payroll.MonthlyAttendanceSummary{
		EmployeeID:       employeeID,
		Year:             year,
		Month:            month,
		TotalPresentDays: decimal.Zero,
	}

	for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !cal.IsWorkingDay(date) {
			continue
		}

		rec, ok := byDate[date]
		if !ok || rec.Status == attendance.StatusNotMarked {
			summary.TotalNotMarkedDays++
			continue
		}

		switch rec.Status {
		case attendance.StatusPresent:
			dayType := attendance.PresentFull
			if rec.PresentDayType != nil {
				dayType = *rec.PresentDayType
			}
			summary.TotalPresentDays = summary.TotalPresentDays.Add(dayType.Multiplier())
		case attendance.StatusAbsent:
			// Absence is unpaid unless explicitly flagged paid.
			if rec.AbsencePaid {
				summary.TotalAbsentPaidDays++
			} else {
				summary.TotalAbsentUnpaidDays++
			}
		case attendance.StatusLeave:
			// Leave without an explicit type counts as paid.
			if rec.LeaveType != nil && *rec.LeaveType == attendance.LeaveUnpaid {
				summary.TotalUnpaidLeaveDays++
			} else {
				summary.TotalPaidLeaveDays++
			}
		default:
			summary.TotalNotMarkedDays++
		}
	}

	summary.TotalPresentDays = summary.TotalPresentDays.Round(2)
	return summary
}

// BreakdownInput carries everything ComputeBreakdown needs. Calendar is
// passed explicitly; the calculator never reads ambient settings.
// HolidaysInMonth is the caller's holiday count for the month; the payroll
// service fills it from the same calendar to keep the two consistent.
type BreakdownInput struct {
	EmployeeID      string
	Year            int
	Month           time.Month
	BaseSalary      decimal.Decimal
	Summary         payroll.MonthlyAttendanceSummary
	Calendar        calendar.Settings
	HolidaysInMonth int
	Allowances      payroll.Allowances
	Deductions      payroll.Deductions
	IncludeHolidays bool
	OtherAllowance  decimal.Decimal
	OtherDeductions decimal.Decimal
}

// ComputeBreakdown derives the salary breakdown for one employee and month.
// Working days are recomputed from the calendar rather than taken from the
// summary, so a stored summary can be re-priced without re-aggregating.
// Returns ErrNoWorkingDays when the calendar yields zero working days for
// the month.
func (c *Calculator) ComputeBreakdown(in BreakdownInput) (payroll.SalaryBreakdown, error) {
	workingDays := in.Calendar.WorkingDaysInMonth(in.Year, in.Month)
	if workingDays == 0 {
		return payroll.SalaryBreakdown{}, payroll.ErrNoWorkingDays
	}
	if in.BaseSalary.IsNegative() {
		return payroll.SalaryBreakdown{}, payroll.ErrNegativeBaseSalary
	}

	perDay := in.BaseSalary.Div(decimal.NewFromInt(int64(workingDays))).Round(2)

	payableDays := in.Summary.TotalPresentDays.
		Add(decimal.NewFromInt(int64(in.Summary.TotalPaidLeaveDays))).
		Add(decimal.NewFromInt(int64(in.Summary.TotalAbsentPaidDays)))

	grossSalary := in.BaseSalary.Add(in.Allowances.Total())

	absenceDeduction := decimal.NewFromInt(int64(in.Summary.TotalAbsentUnpaidDays)).Mul(perDay)
	totalDeductions := in.Deductions.Total().Add(absenceDeduction)

	// Holiday credit only for months where the employee actually worked a
	// meaningful share of the working days.
	holidayDaysPaid := 0
	if in.IncludeHolidays && in.HolidaysInMonth > 0 &&
		payableDays.GreaterThanOrEqual(minPayableDaysForHolidayPay) {
		holidayDaysPaid = in.HolidaysInMonth
	}

	effectivePayableDays := payableDays.Add(decimal.NewFromInt(int64(holidayDaysPaid)))

	netSalary := effectivePayableDays.Mul(perDay).
		Sub(totalDeductions).
		Add(in.OtherAllowance).
		Sub(in.OtherDeductions).
		Round(2)

	// Deductions can exceed earned pay (a fully unpaid-absent month, heavy
	// manual deductions). The payout floors at zero; the employee never owes
	// the garage money.
	if netSalary.IsNegative() {
		netSalary = decimal.Zero
	}

	return payroll.SalaryBreakdown{
		EmployeeID:         in.EmployeeID,
		Year:               in.Year,
		Month:              in.Month,
		WorkingDaysInMonth: workingDays,
		PerDaySalary:       perDay,
		TotalPayableDays:   payableDays,
		HolidayDaysPaid:    holidayDaysPaid,
		GrossSalary:        grossSalary.Round(2),
		AbsenceDeduction:   absenceDeduction.Round(2),
		TotalDeductions:    totalDeductions.Round(2),
		OtherAllowance:     in.OtherAllowance,
		OtherDeductions:    in.OtherDeductions,
		NetSalary:          netSalary,
	}, nil
}
