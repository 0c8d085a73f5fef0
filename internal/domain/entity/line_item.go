package entity

import (
	"github.com/shopspring/decimal"

	"github.com/docuflow/docuflow-api/pkg/apperror"
)

// LineItem represents a single billable line on an invoice. It is immutable
// once part of an invoice snapshot; Total is always derived, never stored.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// NewLineItem parses quantity and rate as exact decimals. A value that is not
// a well-formed, non-negative decimal fails with an InvalidAmount error;
// zero is never substituted for a bad input.
func NewLineItem(description, quantity, rate string) (LineItem, error) {
	qty, err := ParseAmount("quantity", quantity)
	if err != nil {
		return LineItem{}, err
	}
	r, err := ParseAmount("rate", rate)
	if err != nil {
		return LineItem{}, err
	}
	return LineItem{Description: description, Quantity: qty, Rate: r}, nil
}

// Total returns quantity * rate with exact decimal multiplication.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.Rate)
}

// ParseAmount parses a non-negative decimal amount, reporting the field name
// in the InvalidAmount error on failure.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, apperror.InvalidAmount(field, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, apperror.InvalidAmount(field, nil)
	}
	return d, nil
}
