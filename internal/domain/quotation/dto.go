package quotation

import (
	"github.com/garagedesk/garage-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateQuotationRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	VehicleReg    string            `json:"vehicle_reg"`
	Items         []LineItemRequest `json:"items"`
	TaxRate       decimal.Decimal   `json:"tax_rate"`
	Notes         *string           `json:"notes,omitempty"`
}

func validateItems(items []LineItemRequest, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one line item is required"})
	}
	for _, item := range items {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{Field: "items.description", Message: "is required"})
			break
		}
		if !item.Quantity.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "items.quantity", Message: "must be positive"})
			break
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "items.unit_price", Message: "must be non-negative"})
			break
		}
	}
	return errs
}

func (r *CreateQuotationRequest) Validate() error {
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
	errs = validateItems(r.Items, errs)
	if r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be a fraction between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateQuotationRequest struct {
	ID            string            `json:"-"`
	CustomerName  *string           `json:"customer_name,omitempty"`
	CustomerPhone *string           `json:"customer_phone,omitempty"`
	VehicleReg    *string           `json:"vehicle_reg,omitempty"`
	Items         []LineItemRequest `json:"items,omitempty"`
	TaxRate       *decimal.Decimal  `json:"tax_rate,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
}

func (r *UpdateQuotationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CustomerPhone != nil && !validator.IsValidPhoneNumber(*r.CustomerPhone) {
		errs = append(errs, validator.ValidationError{Field: "customer_phone", Message: "is not a valid phone number"})
	}
	if r.VehicleReg != nil && !validator.IsValidVehicleReg(*r.VehicleReg) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_reg", Message: "is not a valid vehicle registration"})
	}
	if r.Items != nil {
		errs = validateItems(r.Items, errs)
	}
	if r.TaxRate != nil && (r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(1))) {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be a fraction between 0 and 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type QuotationResponse struct {
	ID            string             `json:"id"`
	Kind          string             `json:"kind"`
	Number        string             `json:"number"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	VehicleReg    string             `json:"vehicle_reg"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	Notes         *string            `json:"notes,omitempty"`
	QuotationID   *string            `json:"quotation_id,omitempty"`
}

type ListQuotationFilter struct {
	Kind   *string
	Status *string
}

func ToQuotationResponse(q Quotation) QuotationResponse {
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return QuotationResponse{
		ID:            q.ID,
		Kind:          string(q.Kind),
		Number:        q.Number,
		CustomerName:  q.CustomerName,
		CustomerPhone: q.CustomerPhone,
		VehicleReg:    q.VehicleReg,
		Items:         items,
		Subtotal:      q.Subtotal,
		TaxRate:       q.TaxRate,
		TaxAmount:     q.TaxAmount,
		Total:         q.Total,
		Status:        string(q.Status),
		Notes:         q.Notes,
		QuotationID:   q.QuotationID,
	}
}
