package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/docuflow/docuflow-api/internal/domain/enum"
)

// Invoice is the immutable snapshot handed to the rendering core for one
// document. It is composed by the calling application (forms, persistence,
// sync all live there) and never mutated or stored by this service.
type Invoice struct {
	Number          string             `json:"number"`
	Status          enum.InvoiceStatus `json:"status"`
	IssueDate       time.Time          `json:"issue_date"`
	DueDate         *time.Time         `json:"due_date,omitempty"`
	CurrencyCode    string             `json:"currency_code"`
	Items           []LineItem         `json:"items"`
	TaxRate         decimal.Decimal    `json:"tax_rate"`
	TaxKind         enum.TaxKind       `json:"tax_kind"`
	DiscountValue   decimal.Decimal    `json:"discount_value"`
	DiscountKind    enum.DiscountKind  `json:"discount_kind"`
	DiscountEnabled bool               `json:"discount_enabled"`
	PaymentMethods  []PaymentMethod    `json:"payment_methods,omitempty"`
	PaymentNotes    string             `json:"payment_notes,omitempty"`
}
