package quotation

import "context"

// QuotationService defines business logic for quotations and invoices.
type QuotationService interface {
	CreateQuotation(ctx context.Context, req CreateQuotationRequest) (QuotationResponse, error)
	GetQuotation(ctx context.Context, id string) (QuotationResponse, error)
	ListQuotations(ctx context.Context, filter ListQuotationFilter) ([]QuotationResponse, error)

	// UpdateQuotation edits a draft; totals are recomputed.
	UpdateQuotation(ctx context.Context, req UpdateQuotationRequest) (QuotationResponse, error)

	// MarkSent moves draft → sent; MarkAccepted moves sent → accepted.
	MarkSent(ctx context.Context, id string) (QuotationResponse, error)
	MarkAccepted(ctx context.Context, id string) (QuotationResponse, error)

	// ConvertToInvoice creates an invoice from an accepted quotation.
	ConvertToInvoice(ctx context.Context, id string) (QuotationResponse, error)

	// DeleteQuotation removes a draft.
	DeleteQuotation(ctx context.Context, id string) error
}
