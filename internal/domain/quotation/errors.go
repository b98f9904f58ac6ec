package quotation

import "errors"

// Quotation domain errors
var (
	ErrQuotationNotFound    = errors.New("quotation not found")
	ErrQuotationNotDraft    = errors.New("quotation is no longer a draft")
	ErrQuotationNotAccepted = errors.New("only accepted quotations can be invoiced")
	ErrAlreadyInvoiced      = errors.New("quotation has already been invoiced")
	ErrInvalidStatusChange  = errors.New("status change not allowed")
)
