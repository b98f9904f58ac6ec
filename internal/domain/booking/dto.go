package booking

import (
	"time"

	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
)

type CreateBookingRequest struct {
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	VehicleReg      string  `json:"vehicle_reg"`
	ServiceType     string  `json:"service_type"`
	ScheduledAt     string  `json:"scheduled_at"`
	DurationMinutes int     `json:"duration_minutes"`
	MechanicID      *string `json:"mechanic_id,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r *CreateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{Field: "customer_name", Message: "is required"})
	}
	if !validator.IsValidPhoneNumber(r.CustomerPhone) {
		errs = append(errs, validator.ValidationError{Field: "customer_phone", Message: "is not a valid phone number"})
	}
	if !validator.IsValidVehicleReg(r.VehicleReg) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_reg", Message: "is not a valid vehicle registration"})
	}
	if validator.IsEmpty(r.ServiceType) {
		errs = append(errs, validator.ValidationError{Field: "service_type", Message: "is required"})
	}
	if _, ok := validator.IsValidDateTime(r.ScheduledAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "scheduled_at", Message: "must be a valid ISO8601 timestamp"})
	}
	if r.DurationMinutes < 15 || r.DurationMinutes > 8*60 {
		errs = append(errs, validator.ValidationError{Field: "duration_minutes", Message: "must be between 15 and 480"})
	}
	if r.MechanicID != nil && !validator.IsValidUUID(*r.MechanicID) {
		errs = append(errs, validator.ValidationError{Field: "mechanic_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBookingRequest struct {
	ID              string  `json:"-"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	VehicleReg      *string `json:"vehicle_reg,omitempty"`
	ServiceType     *string `json:"service_type,omitempty"`
	ScheduledAt     *string `json:"scheduled_at,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	MechanicID      *string `json:"mechanic_id,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r *UpdateBookingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CustomerPhone != nil && !validator.IsValidPhoneNumber(*r.CustomerPhone) {
		errs = append(errs, validator.ValidationError{Field: "customer_phone", Message: "is not a valid phone number"})
	}
	if r.VehicleReg != nil && !validator.IsValidVehicleReg(*r.VehicleReg) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_reg", Message: "is not a valid vehicle registration"})
	}
	if r.ScheduledAt != nil {
		if _, ok := validator.IsValidDateTime(*r.ScheduledAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "scheduled_at", Message: "must be a valid ISO8601 timestamp"})
		}
	}
	if r.DurationMinutes != nil && (*r.DurationMinutes < 15 || *r.DurationMinutes > 8*60) {
		errs = append(errs, validator.ValidationError{Field: "duration_minutes", Message: "must be between 15 and 480"})
	}
	if r.MechanicID != nil && *r.MechanicID != "" && !validator.IsValidUUID(*r.MechanicID) {
		errs = append(errs, validator.ValidationError{Field: "mechanic_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid booking status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BookingResponse struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	VehicleReg      string  `json:"vehicle_reg"`
	ServiceType     string  `json:"service_type"`
	ScheduledAt     string  `json:"scheduled_at"`
	DurationMinutes int     `json:"duration_minutes"`
	MechanicID      *string `json:"mechanic_id,omitempty"`
	MechanicName    *string `json:"mechanic_name,omitempty"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
}

type ListBookingFilter struct {
	From       *time.Time
	To         *time.Time
	MechanicID *string
	Status     *string
}

func ToBookingResponse(b Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		VehicleReg:      b.VehicleReg,
		ServiceType:     b.ServiceType,
		ScheduledAt:     b.ScheduledAt.Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes,
		MechanicID:      b.MechanicID,
		MechanicName:    b.MechanicName,
		Status:          string(b.Status),
		Notes:           b.Notes,
	}
}
