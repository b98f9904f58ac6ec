package employee

import (
	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        string          `json:"role"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "is not a valid phone number"})
	}
	if !validator.IsInSlice(r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of mechanic, service_desk, manager, apprentice"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Role        *string          `json:"role,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "is not a valid phone number"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, ValidRoles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of mechanic, service_desk, manager, apprentice"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        string          `json:"role"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	IsActive    bool            `json:"is_active"`
}

type ListEmployeeFilter struct {
	ActiveOnly bool
	Role       *string
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		FullName:    e.FullName,
		PhoneNumber: e.PhoneNumber,
		Role:        string(e.Role),
		BaseSalary:  e.BaseSalary,
		IsActive:    e.IsActive,
	}
}
