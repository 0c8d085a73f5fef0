package entity

import (
	"github.com/shopspring/decimal"

	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/pkg/currency"
)

// InvoiceTotals holds the four derived amounts of an invoice, finalized to
// the currency's minor-unit precision.
type InvoiceTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// Subtotal returns the exact sum of all line totals. Addition is decimal
// throughout, so the result is order-independent and drift-free.
func (inv *Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Total())
	}
	return sum
}

// TaxAmount returns the tax derived from the subtotal and the tax
// configuration, at full precision. Zero when the rate is not positive.
// Tax is always computed from the subtotal; the discount does not shrink
// the taxable base.
func (inv *Invoice) TaxAmount() decimal.Decimal {
	if !inv.TaxRate.IsPositive() {
		return decimal.Zero
	}
	if inv.TaxKind == enum.TaxKindFixed {
		return inv.TaxRate
	}
	return inv.Subtotal().Mul(inv.TaxRate).Div(oneHundred)
}

// DiscountAmount returns the discount at full precision. Zero unless the
// discount is enabled with a positive value. The amount is clamped to
// subtotal + tax, so the grand total can reach zero but never go negative.
func (inv *Invoice) DiscountAmount() decimal.Decimal {
	if !inv.DiscountEnabled || !inv.DiscountValue.IsPositive() {
		return decimal.Zero
	}
	raw := inv.DiscountValue
	if inv.DiscountKind == enum.DiscountKindPercentage {
		raw = inv.Subtotal().Mul(inv.DiscountValue).Div(oneHundred)
	}
	ceiling := inv.Subtotal().Add(inv.TaxAmount())
	return decimal.Min(raw, ceiling)
}

// Total returns subtotal + tax - discount at full precision. The discount
// clamp guarantees the result is never negative.
func (inv *Invoice) Total() decimal.Decimal {
	return inv.Subtotal().Add(inv.TaxAmount()).Sub(inv.DiscountAmount())
}

// Totals finalizes all four amounts for display, rounding half-even to the
// minor-unit precision of the given currency code. Rounding happens here,
// once, never at intermediate steps.
func (inv *Invoice) Totals(currencyCode string) InvoiceTotals {
	digits := int32(currency.MinorUnits(currencyCode))
	return InvoiceTotals{
		Subtotal: inv.Subtotal().RoundBank(digits),
		Tax:      inv.TaxAmount().RoundBank(digits),
		Discount: inv.DiscountAmount().RoundBank(digits),
		Total:    inv.Total().RoundBank(digits),
	}
}
