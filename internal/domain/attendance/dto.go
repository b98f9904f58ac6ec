package attendance

import (
	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest creates or replaces the record for (employee, date).
type MarkAttendanceRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	PresentDayType *string `json:"present_day_type,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	AbsencePaid    bool    `json:"absence_paid,omitempty"`
	AbsenceReason  *string `json:"absence_reason,omitempty"`
	LeaveReason    *string `json:"leave_reason,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, leave, not_marked"})
	}

	if r.PresentDayType != nil {
		if Status(r.Status) != StatusPresent {
			errs = append(errs, validator.ValidationError{Field: "present_day_type", Message: "only valid when status is present"})
		} else if !validator.IsInSlice(*r.PresentDayType, ValidPresentDayTypes()) {
			errs = append(errs, validator.ValidationError{Field: "present_day_type", Message: "must be one of full, half, quarter"})
		}
	}
	if r.LeaveType != nil {
		if Status(r.Status) != StatusLeave {
			errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "only valid when status is leave"})
		} else if !validator.IsInSlice(*r.LeaveType, ValidLeaveTypes()) {
			errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be paid or unpaid"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	PresentDayType *string `json:"present_day_type,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	AbsencePaid    bool    `json:"absence_paid"`
	AbsenceReason  *string `json:"absence_reason,omitempty"`
	LeaveReason    *string `json:"leave_reason,omitempty"`
}

// MonthFilter scopes attendance listings to one employee and month.
type MonthFilter struct {
	EmployeeID string
	Year       int
	Month      int
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	} else if !validator.IsValidUUID(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToAttendanceResponse(rec DailyRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date.Format("2006-01-02"),
		Status:        string(rec.Status),
		AbsencePaid:   rec.AbsencePaid,
		AbsenceReason: rec.AbsenceReason,
		LeaveReason:   rec.LeaveReason,
	}
	if rec.PresentDayType != nil {
		s := string(*rec.PresentDayType)
		resp.PresentDayType = &s
	}
	if rec.LeaveType != nil {
		s := string(*rec.LeaveType)
		resp.LeaveType = &s
	}
	return resp
}
