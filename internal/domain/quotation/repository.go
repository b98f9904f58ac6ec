package quotation

import "context"

// QuotationRepository defines data access methods for quotations and
// invoices.
type QuotationRepository interface {
	Create(ctx context.Context, q Quotation) (Quotation, error)
	GetByID(ctx context.Context, id string) (Quotation, error)
	List(ctx context.Context, filter ListQuotationFilter) ([]Quotation, error)
	Update(ctx context.Context, q Quotation) (Quotation, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// NextNumber allocates the next document number for a kind, e.g. Q-0042
	// or INV-0017.
	NextNumber(ctx context.Context, kind Kind) (string, error)
}
