package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/docuflow-api/internal/domain/entity"
	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

// GenerateDocumentRequest carries one complete invoice snapshot plus the
// template selection. The caller owns data completeness; this layer only
// validates shape and arithmetic validity of amounts.
type GenerateDocumentRequest struct {
	Invoice      InvoiceRequest  `json:"invoice" binding:"required"`
	Company      CompanyRequest  `json:"company" binding:"required"`
	Customer     CustomerRequest `json:"customer" binding:"required"`
	CurrencyCode string          `json:"currency_code" binding:"required"`
	Template     TemplateRequest `json:"template" binding:"required"`
	LogoBase64   string          `json:"logo_base64,omitempty"`
}

// InvoiceRequest mirrors the invoice snapshot with amounts as decimal
// strings, never floats, so nothing is lost before exact parsing.
type InvoiceRequest struct {
	Number          string                 `json:"number" binding:"required"`
	Status          string                 `json:"status"`
	IssueDate       string                 `json:"issue_date" binding:"required"`
	DueDate         *string                `json:"due_date,omitempty"`
	Items           []LineItemRequest      `json:"items" binding:"required"`
	TaxRate         string                 `json:"tax_rate,omitempty"`
	TaxKind         string                 `json:"tax_kind,omitempty"`
	DiscountValue   string                 `json:"discount_value,omitempty"`
	DiscountKind    string                 `json:"discount_kind,omitempty"`
	DiscountEnabled bool                   `json:"discount_enabled"`
	PaymentMethods  []PaymentMethodRequest `json:"payment_methods,omitempty"`
	PaymentNotes    string                 `json:"payment_notes,omitempty"`
}

// LineItemRequest is one invoice line with decimal-string amounts.
type LineItemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity" binding:"required"`
	Rate        string `json:"rate" binding:"required"`
}

// PaymentMethodRequest is the tagged union over payment method variants.
// Kind selects the variant; only that variant's fields are read.
type PaymentMethodRequest struct {
	ID   string `json:"id,omitempty"`
	Kind string `json:"kind" binding:"required"`

	// bank_iban
	IBAN        string `json:"iban,omitempty"`
	SwiftCode   string `json:"swift_code,omitempty"`
	Beneficiary string `json:"beneficiary,omitempty"`

	// bank_us
	AccountNumber string `json:"account_number,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
	BankName      string `json:"bank_name,omitempty"`

	// paypal
	Email string `json:"email,omitempty"`

	// card_link
	URL string `json:"url,omitempty"`

	// crypto
	Currency string `json:"currency,omitempty"`
	Address  string `json:"address,omitempty"`
	Memo     string `json:"memo,omitempty"`

	// other
	Name    string `json:"name,omitempty"`
	Details string `json:"details,omitempty"`
}

type AddressRequest struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

type CompanyRequest struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email,omitempty"`
	Phone   string         `json:"phone,omitempty"`
	Address AddressRequest `json:"address"`
	Website string         `json:"website,omitempty"`
}

type CustomerRequest struct {
	Name           string                 `json:"name" binding:"required"`
	Email          string                 `json:"email,omitempty"`
	Phone          string                 `json:"phone,omitempty"`
	Address        AddressRequest         `json:"address"`
	Website        string                 `json:"website,omitempty"`
	Status         string                 `json:"status,omitempty"`
	PaymentMethods []PaymentMethodRequest `json:"payment_methods,omitempty"`
}

// TemplateRequest selects a design and optionally overrides its theme.
type TemplateRequest struct {
	Design string        `json:"design" binding:"required"`
	Theme  *ThemeRequest `json:"theme,omitempty"`
}

type ThemeRequest struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Line       string `json:"line"`
	Background string `json:"background"`
	SubtleText string `json:"subtle_text"`
}

const dateLayout = "2006-01-02"

// ToEntity converts the invoice request into the immutable snapshot,
// parsing every amount exactly. A malformed decimal aborts with an
// InvalidAmount error.
func (r *InvoiceRequest) ToEntity() (entity.Invoice, error) {
	inv := entity.Invoice{
		Number:          r.Number,
		Status:          parseStatus(r.Status),
		DiscountEnabled: r.DiscountEnabled,
		PaymentNotes:    r.PaymentNotes,
	}

	issue, err := time.Parse(dateLayout, r.IssueDate)
	if err != nil {
		return entity.Invoice{}, apperror.NewBadRequestError("issue_date must be YYYY-MM-DD")
	}
	inv.IssueDate = issue
	if r.DueDate != nil && *r.DueDate != "" {
		due, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			return entity.Invoice{}, apperror.NewBadRequestError("due_date must be YYYY-MM-DD")
		}
		inv.DueDate = &due
	}

	inv.Items = make([]entity.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		li, err := entity.NewLineItem(item.Description, item.Quantity, item.Rate)
		if err != nil {
			return entity.Invoice{}, err
		}
		inv.Items = append(inv.Items, li)
	}

	if r.TaxRate != "" {
		if inv.TaxRate, err = entity.ParseAmount("tax_rate", r.TaxRate); err != nil {
			return entity.Invoice{}, err
		}
	}
	inv.TaxKind = parseTaxKind(r.TaxKind)
	if r.DiscountValue != "" {
		if inv.DiscountValue, err = entity.ParseAmount("discount_value", r.DiscountValue); err != nil {
			return entity.Invoice{}, err
		}
	}
	inv.DiscountKind = parseDiscountKind(r.DiscountKind)

	inv.PaymentMethods = make([]entity.PaymentMethod, 0, len(r.PaymentMethods))
	for _, pm := range r.PaymentMethods {
		method, err := pm.ToEntity()
		if err != nil {
			return entity.Invoice{}, err
		}
		inv.PaymentMethods = append(inv.PaymentMethods, method)
	}

	return inv, nil
}

// ToEntity converts the tagged request into the matching sealed variant.
func (r *PaymentMethodRequest) ToEntity() (entity.PaymentMethod, error) {
	id := uuid.Nil
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, apperror.NewBadRequestError("payment method id must be a UUID")
		}
		id = parsed
	}

	kind := enum.PaymentMethodKind(strings.ToLower(r.Kind))
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("unknown payment method kind: " + r.Kind)
	}

	switch kind {
	case enum.PaymentMethodBankIBAN:
		return entity.BankIBANMethod{MethodID: id, IBAN: r.IBAN, SwiftCode: r.SwiftCode, Beneficiary: r.Beneficiary}, nil
	case enum.PaymentMethodBankUS:
		return entity.BankUSMethod{MethodID: id, AccountNumber: r.AccountNumber, RoutingNumber: r.RoutingNumber, BankName: r.BankName}, nil
	case enum.PaymentMethodPayPal:
		return entity.PayPalMethod{MethodID: id, Email: r.Email}, nil
	case enum.PaymentMethodCardLink:
		return entity.CardLinkMethod{MethodID: id, URL: r.URL}, nil
	case enum.PaymentMethodCrypto:
		return entity.CryptoMethod{MethodID: id, Currency: r.Currency, Address: r.Address, Memo: r.Memo}, nil
	default:
		return entity.OtherMethod{MethodID: id, Name: r.Name, Details: r.Details}, nil
	}
}

func (r *AddressRequest) ToEntity() entity.Address {
	return entity.Address{
		Line1: r.Line1, Line2: r.Line2, City: r.City,
		State: r.State, Zip: r.Zip, Country: r.Country,
	}
}

func (r *CompanyRequest) ToEntity() entity.Company {
	return entity.Company{
		Name: r.Name, Email: r.Email, Phone: r.Phone,
		Address: r.Address.ToEntity(), Website: r.Website,
	}
}

// ToEntity converts the customer request, including the saved payment
// methods carried on the customer record.
func (r *CustomerRequest) ToEntity() (entity.Customer, error) {
	cust := entity.Customer{
		Name: r.Name, Email: r.Email, Phone: r.Phone,
		Address: r.Address.ToEntity(), Website: r.Website,
		Status: parseCustomerStatus(r.Status),
	}
	cust.PaymentMethods = make([]entity.PaymentMethod, 0, len(r.PaymentMethods))
	for _, pm := range r.PaymentMethods {
		method, err := pm.ToEntity()
		if err != nil {
			return entity.Customer{}, err
		}
		cust.PaymentMethods = append(cust.PaymentMethods, method)
	}
	return cust, nil
}

// ToEntity builds the complete template selection. An empty theme keeps the
// design's default.
func (r *TemplateRequest) ToEntity() entity.CompleteTemplate {
	ct := entity.CompleteTemplate{
		Descriptor: entity.TemplateDescriptor{Design: enum.TemplateDesign(r.Design)},
	}
	if r.Theme != nil {
		ct.Theme = entity.TemplateTheme{
			Name:       r.Theme.Name,
			Primary:    r.Theme.Primary,
			Secondary:  r.Theme.Secondary,
			Accent:     r.Theme.Accent,
			Line:       r.Theme.Line,
			Background: r.Theme.Background,
			SubtleText: r.Theme.SubtleText,
		}
	}
	return ct
}

func parseCustomerStatus(s string) enum.CustomerStatus {
	if strings.ToLower(s) == "archived" {
		return enum.CustomerStatusArchived
	}
	return enum.CustomerStatusActive
}

func parseStatus(s string) enum.InvoiceStatus {
	switch strings.ToLower(s) {
	case "sent":
		return enum.InvoiceStatusSent
	case "paid":
		return enum.InvoiceStatusPaid
	case "overdue":
		return enum.InvoiceStatusOverdue
	default:
		return enum.InvoiceStatusDraft
	}
}

func parseTaxKind(s string) enum.TaxKind {
	if strings.ToLower(s) == "fixed" {
		return enum.TaxKindFixed
	}
	return enum.TaxKindPercentage
}

func parseDiscountKind(s string) enum.DiscountKind {
	if strings.ToLower(s) == "fixed" {
		return enum.DiscountKindFixed
	}
	return enum.DiscountKindPercentage
}
