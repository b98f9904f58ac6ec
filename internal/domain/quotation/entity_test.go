package quotation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(desc string, qty, price string) LineItem {
	return LineItem{
		Description: desc,
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
	}
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		item("Engine oil 5W-30", "4", "550"),
		item("Oil filter", "1", "320"),
		item("Labour", "1.5", "400"),
	}

	out, totals := ComputeTotals(items, decimal.RequireFromString("0.18"))

	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("2200")))
	assert.True(t, out[1].Amount.Equal(decimal.RequireFromString("320")))
	assert.True(t, out[2].Amount.Equal(decimal.RequireFromString("600")))

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("3120")))
	assert.True(t, totals.TaxAmount.Equal(decimal.RequireFromString("561.6")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("3681.6")))
}

func TestComputeTotalsRoundsLineAmounts(t *testing.T) {
	items := []LineItem{item("Brake fluid", "0.333", "100")}

	out, totals := ComputeTotals(items, decimal.Zero)

	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("33.30")))
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("33.30")))
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.Equal(totals.Subtotal))
}

func TestComputeTotalsEmpty(t *testing.T) {
	out, totals := ComputeTotals(nil, decimal.RequireFromString("0.18"))

	assert.Empty(t, out)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotalsTaxOnSubtotal(t *testing.T) {
	// Tax applies once to the subtotal, not per line, so per-line rounding
	// does not compound.
	items := []LineItem{
		item("Part A", "1", "10.005"),
		item("Part B", "1", "10.005"),
	}

	_, totals := ComputeTotals(items, decimal.RequireFromString("0.1"))

	// Each line rounds to 10.01, subtotal 20.02, tax 2.00 (rounded).
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("20.02")))
	assert.True(t, totals.TaxAmount.Equal(decimal.RequireFromString("2")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("22.02")))
}
