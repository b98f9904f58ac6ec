package response

import (
	"errors"
	"net/http"

	"github.com/garagedesk/garage-backend-go/internal/domain/attendance"
	"github.com/garagedesk/garage-backend-go/internal/domain/booking"
	"github.com/garagedesk/garage-backend-go/internal/domain/calendar"
	"github.com/garagedesk/garage-backend-go/internal/domain/employee"
	"github.com/garagedesk/garage-backend-go/internal/domain/payroll"
	"github.com/garagedesk/garage-backend-go/internal/domain/quotation"
	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrNoWorkingWeekdays):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrInvalidWeekday):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrInvalidICSCalendar):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrDuplicateHoliday):
		Conflict(w, "Holiday already exists on this date")
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrSettingsNotFound):
		NotFound(w, "Calendar settings not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoWorkingDays):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNegativeBaseSalary):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrSalaryRecordExists):
		Conflict(w, "Salary record already exists for this period")
	case errors.Is(err, payroll.ErrSalaryRecordNotPending):
		Conflict(w, "Salary record is no longer pending")
	case errors.Is(err, payroll.ErrSalaryRecordNotApproved):
		Conflict(w, "Salary record is not approved")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Booking domain errors
	case errors.Is(err, booking.ErrBookingNotFound):
		NotFound(w, "Booking not found")
	case errors.Is(err, booking.ErrMechanicNotFound):
		NotFound(w, "Mechanic not found")
	case errors.Is(err, booking.ErrMechanicDoubleBooked):
		Conflict(w, "Mechanic already has a booking in this time slot")
	case errors.Is(err, booking.ErrBookingNotEditable):
		Conflict(w, "Only scheduled bookings can be edited")
	case errors.Is(err, booking.ErrInvalidTransition):
		Conflict(w, "Booking status transition not allowed")

	// Quotation domain errors
	case errors.Is(err, quotation.ErrQuotationNotFound):
		NotFound(w, "Quotation not found")
	case errors.Is(err, quotation.ErrQuotationNotDraft):
		Conflict(w, "Quotation is no longer a draft")
	case errors.Is(err, quotation.ErrQuotationNotAccepted):
		Conflict(w, "Only accepted quotations can be invoiced")
	case errors.Is(err, quotation.ErrAlreadyInvoiced):
		Conflict(w, "Quotation has already been invoiced")
	case errors.Is(err, quotation.ErrInvalidStatusChange):
		Conflict(w, "Status change not allowed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
