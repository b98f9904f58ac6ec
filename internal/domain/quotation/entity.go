package quotation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind separates estimates from billable documents. A quotation becomes an
// invoice through conversion, never by edit.
type Kind string

const (
	KindQuotation Kind = "quotation"
	KindInvoice   Kind = "invoice"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusInvoiced Status = "invoiced"
	StatusPaid     Status = "paid"
)

func ValidStatuses() []string {
	return []string{
		string(StatusDraft),
		string(StatusSent),
		string(StatusAccepted),
		string(StatusInvoiced),
		string(StatusPaid),
	}
}

// LineItem is one parts-or-labour line on a quotation.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// Quotation is a quotation or invoice with computed totals. Totals are
// derived from Items via ComputeTotals and stored alongside them.
type Quotation struct {
	ID            string
	Kind          Kind
	Number        string
	CustomerName  string
	CustomerPhone string
	VehicleReg    string
	Items         []LineItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	Status        Status
	Notes         *string
	QuotationID   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Totals is the decimal roll-up of a line-item list.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals folds line items into subtotal, tax and total. Each line
// amount is quantity x unit price rounded to cents; tax applies to the
// subtotal. taxRate is a fraction (0.18 for 18%).
func ComputeTotals(items []LineItem, taxRate decimal.Decimal) ([]LineItem, Totals) {
	out := make([]LineItem, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		item.Amount = item.Quantity.Mul(item.UnitPrice).Round(2)
		subtotal = subtotal.Add(item.Amount)
		out = append(out, item)
	}

	tax := subtotal.Mul(taxRate).Round(2)
	return out, Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}
