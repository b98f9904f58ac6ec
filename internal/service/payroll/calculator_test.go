package payroll

import (
	"testing"
	"time"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "emp-1"

// April 2024 has 30 days and exactly 22 Mon-Fri working days.
func monFriCalendar() calendar.Settings {
	return calendar.Settings{
		WorkingWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
	}
}

// workingDates returns the working dates of (year, month) in order.
func workingDates(cal calendar.Settings, year int, month time.Month) []time.Time {
	var dates []time.Time
	for day := 1; day <= calendar.DaysInMonth(year, month); day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if cal.IsWorkingDay(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

func presentRecord(date time.Time, dayType attendance.PresentDayType) attendance.DailyRecord {
	return attendance.DailyRecord{
		EmployeeID:     testEmployeeID,
		Date:           date,
		Status:         attendance.StatusPresent,
		PresentDayType: &dayType,
	}
}

func absentRecord(date time.Time, paid bool) attendance.DailyRecord {
	return attendance.DailyRecord{
		EmployeeID:  testEmployeeID,
		Date:        date,
		Status:      attendance.StatusAbsent,
		AbsencePaid: paid,
	}
}

func leaveRecord(date time.Time, leaveType attendance.LeaveType) attendance.DailyRecord {
	return attendance.DailyRecord{
		EmployeeID: testEmployeeID,
		Date:       date,
		Status:     attendance.StatusLeave,
		LeaveType:  &leaveType,
	}
}

func TestAggregate_FullMonthPresent(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)
	require.Len(t, dates, 22)

	var records []attendance.DailyRecord
	for _, d := range dates {
		records = append(records, presentRecord(d, attendance.PresentFull))
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)

	assert.True(t, summary.TotalPresentDays.Equal(decimal.NewFromInt(22)))
	assert.Zero(t, summary.TotalAbsentPaidDays)
	assert.Zero(t, summary.TotalAbsentUnpaidDays)
	assert.Zero(t, summary.TotalPaidLeaveDays)
	assert.Zero(t, summary.TotalUnpaidLeaveDays)
	assert.Zero(t, summary.TotalNotMarkedDays)
}

func TestAggregate_FiltersOtherEmployeesAndMonths(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)

	records := []attendance.DailyRecord{
		presentRecord(dates[0], attendance.PresentFull),
		// Same date, different employee
		{EmployeeID: "someone-else", Date: dates[1], Status: attendance.StatusPresent},
		// Same employee, previous month
		presentRecord(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), attendance.PresentFull),
		// Same employee, next month
		presentRecord(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC), attendance.PresentFull),
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)

	assert.True(t, summary.TotalPresentDays.Equal(decimal.NewFromInt(1)),
		"got %s present days", summary.TotalPresentDays)
	assert.Equal(t, 21, summary.TotalNotMarkedDays)
}

func TestAggregate_RecordsOnNonWorkingDatesIgnored(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	cal.Holidays = []calendar.Holiday{
		{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"},
	}

	records := []attendance.DailyRecord{
		// Sunday
		presentRecord(time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC), attendance.PresentFull),
		// Holiday
		presentRecord(time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), attendance.PresentFull),
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)

	assert.True(t, summary.TotalPresentDays.IsZero())
	// 22 weekday dates minus the holiday
	assert.Equal(t, 21, summary.TotalNotMarkedDays)
}

// Partition invariant: present-marked dates + absent + leave + not-marked
// must exactly cover the working days of the month, whatever mix of day
// types is in play.
func TestAggregate_PartitionInvariant(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)
	require.Len(t, dates, 22)

	// 15 full, 3 half, 1.5 days of paid leave is not expressible, so: 2 paid
	// leave dates, 2 unpaid absent. 15+3+2+2 = 22 dates marked, 0 not marked.
	var records []attendance.DailyRecord
	presentDates := 0
	for i, d := range dates {
		switch {
		case i < 15:
			records = append(records, presentRecord(d, attendance.PresentFull))
			presentDates++
		case i < 18:
			records = append(records, presentRecord(d, attendance.PresentHalf))
			presentDates++
		case i < 20:
			records = append(records, leaveRecord(d, attendance.LeavePaid))
		default:
			records = append(records, absentRecord(d, false))
		}
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)

	// Weighted present-day equivalents: 15 + 3*0.5 = 16.5
	assert.True(t, summary.TotalPresentDays.Equal(decimal.NewFromFloat(16.5)),
		"got %s present days", summary.TotalPresentDays)

	// Date-count partition of the 22 working days
	markedDates := presentDates +
		summary.TotalAbsentPaidDays + summary.TotalAbsentUnpaidDays +
		summary.TotalPaidLeaveDays + summary.TotalUnpaidLeaveDays +
		summary.TotalNotMarkedDays
	assert.Equal(t, cal.WorkingDaysInMonth(2024, time.April), markedDates)

	assert.Equal(t, 2, summary.TotalPaidLeaveDays)
	assert.Equal(t, 2, summary.TotalAbsentUnpaidDays)
	assert.Equal(t, 0, summary.TotalNotMarkedDays)
}

func TestAggregate_QuarterDaysRounding(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)

	var records []attendance.DailyRecord
	for i := 0; i < 3; i++ {
		records = append(records, presentRecord(dates[i], attendance.PresentQuarter))
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)
	assert.True(t, summary.TotalPresentDays.Equal(decimal.NewFromFloat(0.75)),
		"got %s present days", summary.TotalPresentDays)
}

func TestAggregate_AbsenceDefaultsUnpaid_LeaveDefaultsPaid(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)

	records := []attendance.DailyRecord{
		absentRecord(dates[0], false),
		absentRecord(dates[1], true),
		// Leave with no explicit type
		{EmployeeID: testEmployeeID, Date: dates[2], Status: attendance.StatusLeave},
		leaveRecord(dates[3], attendance.LeaveUnpaid),
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)

	assert.Equal(t, 1, summary.TotalAbsentUnpaidDays)
	assert.Equal(t, 1, summary.TotalAbsentPaidDays)
	assert.Equal(t, 1, summary.TotalPaidLeaveDays)
	assert.Equal(t, 1, summary.TotalUnpaidLeaveDays)
}

func TestAggregate_Idempotent(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)

	records := []attendance.DailyRecord{
		presentRecord(dates[0], attendance.PresentHalf),
		absentRecord(dates[1], false),
	}

	first := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)
	second := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)
	assert.Equal(t, first, second)
}

func TestAggregate_EmptyCalendarAllZeros(t *testing.T) {
	calc := NewCalculator()
	// No working weekdays at all: aggregate must not crash and every bucket
	// stays zero.
	summary := calc.Aggregate(testEmployeeID, 2024, time.April, nil, calendar.Settings{})

	assert.True(t, summary.TotalPresentDays.IsZero())
	assert.Zero(t, summary.TotalAbsentPaidDays)
	assert.Zero(t, summary.TotalAbsentUnpaidDays)
	assert.Zero(t, summary.TotalPaidLeaveDays)
	assert.Zero(t, summary.TotalUnpaidLeaveDays)
	assert.Zero(t, summary.TotalNotMarkedDays)
}

// Scenario: 22 working days, 20 full-present, 2 not marked, base 6600.
func TestComputeBreakdown_PlainMonth(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	summary := payroll.MonthlyAttendanceSummary{
		EmployeeID:         testEmployeeID,
		Year:               2024,
		Month:              time.April,
		TotalPresentDays:   decimal.NewFromInt(20),
		TotalNotMarkedDays: 2,
	}

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary:    summary,
		Calendar:   cal,
	})
	require.NoError(t, err)

	assert.Equal(t, 22, breakdown.WorkingDaysInMonth)
	assert.True(t, breakdown.PerDaySalary.Equal(decimal.NewFromInt(300)), "per day = %s", breakdown.PerDaySalary)
	assert.True(t, breakdown.TotalPayableDays.Equal(decimal.NewFromInt(20)))
	assert.True(t, breakdown.GrossSalary.Equal(decimal.NewFromInt(6600)))
	assert.True(t, breakdown.TotalDeductions.IsZero())
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(6000)), "net = %s", breakdown.NetSalary)
}

func TestComputeBreakdown_UnpaidAbsenceDeduction(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	summary := payroll.MonthlyAttendanceSummary{
		EmployeeID:            testEmployeeID,
		Year:                  2024,
		Month:                 time.April,
		TotalPresentDays:      decimal.NewFromFloat(16.5),
		TotalAbsentUnpaidDays: 2,
		TotalPaidLeaveDays:    2,
	}

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary:    summary,
		Calendar:   cal,
	})
	require.NoError(t, err)

	// payable = 16.5 + 2 paid leave = 18.5; absence deduction = 2 * 300
	assert.True(t, breakdown.TotalPayableDays.Equal(decimal.NewFromFloat(18.5)))
	assert.True(t, breakdown.AbsenceDeduction.Equal(decimal.NewFromInt(600)), "absence deduction = %s", breakdown.AbsenceDeduction)
	// net = 18.5*300 - 600 = 4950
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(4950)), "net = %s", breakdown.NetSalary)
}

// Scenario: includeHolidays with 2 holidays and 18 payable days pays 20 days.
func TestComputeBreakdown_HolidayPay(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	// Two Tuesday holidays in April 2024
	cal.Holidays = []calendar.Holiday{
		{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"},
		{Date: time.Date(2024, time.April, 16, 0, 0, 0, 0, time.UTC), Name: "Garage day"},
	}
	workingDays := cal.WorkingDaysInMonth(2024, time.April)
	require.Equal(t, 20, workingDays)

	summary := payroll.MonthlyAttendanceSummary{
		EmployeeID:       testEmployeeID,
		Year:             2024,
		Month:            time.April,
		TotalPresentDays: decimal.NewFromInt(18),
	}

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID:      testEmployeeID,
		Year:            2024,
		Month:           time.April,
		BaseSalary:      decimal.NewFromInt(6000),
		Summary:         summary,
		Calendar:        cal,
		HolidaysInMonth: cal.HolidaysInMonth(2024, time.April),
		IncludeHolidays: true,
	})
	require.NoError(t, err)

	// per day = 6000/20 = 300; effective payable = 18 + 2 = 20
	assert.Equal(t, 2, breakdown.HolidayDaysPaid)
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(6000)), "net = %s", breakdown.NetSalary)
}

func TestComputeBreakdown_HolidayGateBoundary(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	cal.Holidays = []calendar.Holiday{
		{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"},
	}

	cases := []struct {
		name        string
		presentDays decimal.Decimal
		wantHoliday int
	}{
		{"just below the gate", decimal.NewFromFloat(6.99), 0},
		{"exactly at the gate", decimal.NewFromInt(7), 1},
		{"above the gate", decimal.NewFromFloat(7.25), 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			breakdown, err := calc.ComputeBreakdown(BreakdownInput{
				EmployeeID: testEmployeeID,
				Year:       2024,
				Month:      time.April,
				BaseSalary: decimal.NewFromInt(6300),
				Summary: payroll.MonthlyAttendanceSummary{
					EmployeeID:       testEmployeeID,
					Year:             2024,
					Month:            time.April,
					TotalPresentDays: c.presentDays,
				},
				Calendar:        cal,
				HolidaysInMonth: 1,
				IncludeHolidays: true,
			})
			require.NoError(t, err)
			assert.Equal(t, c.wantHoliday, breakdown.HolidayDaysPaid)
		})
	}
}

func TestComputeBreakdown_HolidayPayOffByDefault(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	cal.Holidays = []calendar.Holiday{
		{Date: time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), Name: "Eid"},
	}

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6300),
		Summary: payroll.MonthlyAttendanceSummary{
			EmployeeID:       testEmployeeID,
			TotalPresentDays: decimal.NewFromInt(20),
		},
		Calendar:        cal,
		HolidaysInMonth: 1,
		// IncludeHolidays left false
	})
	require.NoError(t, err)
	assert.Zero(t, breakdown.HolidayDaysPaid)
}

// Scenario: ad hoc amounts on top of a 6000 net.
func TestComputeBreakdown_OtherAmounts(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary: payroll.MonthlyAttendanceSummary{
			EmployeeID:       testEmployeeID,
			TotalPresentDays: decimal.NewFromInt(20),
		},
		Calendar:        cal,
		OtherAllowance:  decimal.NewFromInt(200),
		OtherDeductions: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	// 20*300 + 200 - 50
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(6150)), "net = %s", breakdown.NetSalary)
}

func TestComputeBreakdown_ItemizedAllowancesAndDeductions(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary: payroll.MonthlyAttendanceSummary{
			EmployeeID:       testEmployeeID,
			TotalPresentDays: decimal.NewFromInt(22),
		},
		Calendar: cal,
		Allowances: payroll.Allowances{
			DA:    decimal.NewFromInt(500),
			HRA:   decimal.NewFromInt(1000),
			Other: decimal.NewFromInt(100),
		},
		Deductions: payroll.Deductions{
			IncomeTax:     decimal.NewFromInt(400),
			ProvidentFund: decimal.NewFromInt(300),
			Other:         decimal.NewFromInt(50),
		},
	})
	require.NoError(t, err)

	assert.True(t, breakdown.GrossSalary.Equal(decimal.NewFromInt(8200)), "gross = %s", breakdown.GrossSalary)
	assert.True(t, breakdown.TotalDeductions.Equal(decimal.NewFromInt(750)))
	// 22*300 - 750 = 5850
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(5850)), "net = %s", breakdown.NetSalary)
}

// Scenario: a month with zero working days must fail, not divide by zero.
func TestComputeBreakdown_NoWorkingDays(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary:    payroll.MonthlyAttendanceSummary{EmployeeID: testEmployeeID},
		Calendar:   calendar.Settings{},
	})
	assert.ErrorIs(t, err, payroll.ErrNoWorkingDays)
}

func TestComputeBreakdown_NegativeBaseSalary(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(-1),
		Summary:    payroll.MonthlyAttendanceSummary{EmployeeID: testEmployeeID},
		Calendar:   monFriCalendar(),
	})
	assert.ErrorIs(t, err, payroll.ErrNegativeBaseSalary)
}

// A fully unpaid-absent month earns nothing and deducts a full month of
// per-day pay; the payout must floor at zero instead of going negative.
func TestComputeBreakdown_NetSalaryFloorsAtZero(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary: payroll.MonthlyAttendanceSummary{
			EmployeeID:            testEmployeeID,
			Year:                  2024,
			Month:                 time.April,
			TotalAbsentUnpaidDays: 22,
		},
		Calendar: cal,
	})
	require.NoError(t, err)

	// The deduction itself is still reported in full.
	assert.True(t, breakdown.TotalPayableDays.IsZero())
	assert.True(t, breakdown.AbsenceDeduction.Equal(decimal.NewFromInt(6600)),
		"absence deduction = %s", breakdown.AbsenceDeduction)
	assert.True(t, breakdown.NetSalary.IsZero(), "net = %s", breakdown.NetSalary)
	assert.False(t, breakdown.NetSalary.IsNegative())
}

// Manual deductions bigger than the earned pay also floor at zero.
func TestComputeBreakdown_OverDeductionFloorsAtZero(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary: payroll.MonthlyAttendanceSummary{
			EmployeeID:       testEmployeeID,
			TotalPresentDays: decimal.NewFromInt(2),
		},
		Calendar:        cal,
		OtherDeductions: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	assert.True(t, breakdown.NetSalary.IsZero(), "net = %s", breakdown.NetSalary)
}

// More unpaid absence never increases net salary.
func TestComputeBreakdown_UnpaidAbsenceMonotonic(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()

	previousNet := decimal.NewFromInt(1 << 40)
	for unpaid := 0; unpaid <= 5; unpaid++ {
		breakdown, err := calc.ComputeBreakdown(BreakdownInput{
			EmployeeID: testEmployeeID,
			Year:       2024,
			Month:      time.April,
			BaseSalary: decimal.NewFromInt(6600),
			Summary: payroll.MonthlyAttendanceSummary{
				EmployeeID:            testEmployeeID,
				TotalPresentDays:      decimal.NewFromInt(15),
				TotalAbsentUnpaidDays: unpaid,
			},
			Calendar: cal,
		})
		require.NoError(t, err)
		assert.True(t, breakdown.NetSalary.LessThanOrEqual(previousNet),
			"net %s with %d unpaid days exceeds previous %s", breakdown.NetSalary, unpaid, previousNet)
		previousNet = breakdown.NetSalary
	}
}

// End-to-end: aggregate a marked month and price it.
func TestAggregateThenComputeBreakdown(t *testing.T) {
	calc := NewCalculator()
	cal := monFriCalendar()
	dates := workingDates(cal, 2024, time.April)

	var records []attendance.DailyRecord
	for i, d := range dates {
		switch {
		case i < 18:
			records = append(records, presentRecord(d, attendance.PresentFull))
		case i < 20:
			records = append(records, leaveRecord(d, attendance.LeavePaid))
		default:
			records = append(records, absentRecord(d, false))
		}
	}

	summary := calc.Aggregate(testEmployeeID, 2024, time.April, records, cal)
	breakdown, err := calc.ComputeBreakdown(BreakdownInput{
		EmployeeID: testEmployeeID,
		Year:       2024,
		Month:      time.April,
		BaseSalary: decimal.NewFromInt(6600),
		Summary:    summary,
		Calendar:   cal,
	})
	require.NoError(t, err)

	// payable = 18 + 2 = 20; deduction = 2*300; net = 20*300 - 600 = 5400
	assert.True(t, breakdown.TotalPayableDays.Equal(decimal.NewFromInt(20)))
	assert.True(t, breakdown.NetSalary.Equal(decimal.NewFromInt(5400)), "net = %s", breakdown.NetSalary)

	// Nothing in a valid run goes negative.
	assert.False(t, breakdown.PerDaySalary.IsNegative())
	assert.False(t, breakdown.TotalPayableDays.IsNegative())
	assert.False(t, breakdown.GrossSalary.IsNegative())
	assert.False(t, breakdown.TotalDeductions.IsNegative())
	assert.False(t, breakdown.NetSalary.IsNegative())
}
