package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a daily attendance record.
type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusLeave     Status = "leave"
	StatusNotMarked Status = "not_marked"
)

func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLeave),
		string(StatusNotMarked),
	}
}

// PresentDayType describes how much of a working day a present employee
// actually worked. Only meaningful when Status is present.
type PresentDayType string

const (
	PresentFull    PresentDayType = "full"
	PresentHalf    PresentDayType = "half"
	PresentQuarter PresentDayType = "quarter"
)

func ValidPresentDayTypes() []string {
	return []string{string(PresentFull), string(PresentHalf), string(PresentQuarter)}
}

var (
	multiplierFull    = decimal.NewFromInt(1)
	multiplierHalf    = decimal.NewFromFloat(0.5)
	multiplierQuarter = decimal.NewFromFloat(0.25)
)

// Multiplier returns the payable-day weight of this day type. Unknown values
// count as a full day rather than dropping pay silently.
func (p PresentDayType) Multiplier() decimal.Decimal {
	switch p {
	case PresentHalf:
		return multiplierHalf
	case PresentQuarter:
		return multiplierQuarter
	default:
		return multiplierFull
	}
}

// LeaveType splits leave into paid and unpaid. Only meaningful when Status is
// leave.
type LeaveType string

const (
	LeavePaid   LeaveType = "paid"
	LeaveUnpaid LeaveType = "unpaid"
)

func ValidLeaveTypes() []string {
	return []string{string(LeavePaid), string(LeaveUnpaid)}
}

// DailyRecord is one employee's attendance for one calendar date. The
// variant fields are only set for their status: PresentDayType for present,
// LeaveType/LeaveReason for leave, AbsencePaid/AbsenceReason for absent.
// At most one record exists per (employee, date).
type DailyRecord struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	Status         Status
	PresentDayType *PresentDayType
	LeaveType      *LeaveType
	AbsencePaid    bool
	AbsenceReason  *string
	LeaveReason    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}
