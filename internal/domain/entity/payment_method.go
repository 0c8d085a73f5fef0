package entity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/docuflow/docuflow-api/internal/domain/enum"
)

// PaymentMethod is a closed set of payment method variants. Every variant
// formats its own display title and value; consumers never inspect concrete
// types beyond this interface.
type PaymentMethod interface {
	// ID returns the stable identity of the method.
	ID() uuid.UUID
	// Kind returns the wire-level discriminator for the variant.
	Kind() enum.PaymentMethodKind
	// DisplayTitle returns the heading shown for the method.
	DisplayTitle() string
	// DisplayValue returns the detail line shown for the method. An empty
	// value means the method has nothing to display and is skipped.
	DisplayValue() string

	isPaymentMethod()
}

// joinPresent joins the non-empty parts with the payment detail separator.
func joinPresent(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " · ")
}

// BankIBANMethod is an international bank transfer destination.
type BankIBANMethod struct {
	MethodID    uuid.UUID
	IBAN        string
	SwiftCode   string
	Beneficiary string
}

func (m BankIBANMethod) ID() uuid.UUID                { return m.MethodID }
func (m BankIBANMethod) Kind() enum.PaymentMethodKind { return enum.PaymentMethodBankIBAN }
func (m BankIBANMethod) DisplayTitle() string         { return "Bank Transfer (IBAN)" }
func (m BankIBANMethod) isPaymentMethod()             {}

func (m BankIBANMethod) DisplayValue() string {
	return joinPresent(m.IBAN, m.SwiftCode, m.Beneficiary)
}

// BankUSMethod is a US domestic bank transfer destination.
type BankUSMethod struct {
	MethodID      uuid.UUID
	AccountNumber string
	RoutingNumber string
	BankName      string
}

func (m BankUSMethod) ID() uuid.UUID                { return m.MethodID }
func (m BankUSMethod) Kind() enum.PaymentMethodKind { return enum.PaymentMethodBankUS }
func (m BankUSMethod) DisplayTitle() string         { return "Bank Transfer (US)" }
func (m BankUSMethod) isPaymentMethod()             {}

func (m BankUSMethod) DisplayValue() string {
	return joinPresent(m.AccountNumber, m.RoutingNumber, m.BankName)
}

// PayPalMethod is a PayPal account.
type PayPalMethod struct {
	MethodID uuid.UUID
	Email    string
}

func (m PayPalMethod) ID() uuid.UUID                { return m.MethodID }
func (m PayPalMethod) Kind() enum.PaymentMethodKind { return enum.PaymentMethodPayPal }
func (m PayPalMethod) DisplayTitle() string         { return "PayPal" }
func (m PayPalMethod) DisplayValue() string         { return strings.TrimSpace(m.Email) }
func (m PayPalMethod) isPaymentMethod()             {}

// CardLinkMethod is a hosted card payment link.
type CardLinkMethod struct {
	MethodID uuid.UUID
	URL      string
}

func (m CardLinkMethod) ID() uuid.UUID                { return m.MethodID }
func (m CardLinkMethod) Kind() enum.PaymentMethodKind { return enum.PaymentMethodCardLink }
func (m CardLinkMethod) DisplayTitle() string         { return "Pay by Card" }
func (m CardLinkMethod) DisplayValue() string         { return strings.TrimSpace(m.URL) }
func (m CardLinkMethod) isPaymentMethod()             {}

// CryptoMethod is a cryptocurrency wallet destination.
type CryptoMethod struct {
	MethodID uuid.UUID
	Currency string
	Address  string
	Memo     string
}

func (m CryptoMethod) ID() uuid.UUID                { return m.MethodID }
func (m CryptoMethod) Kind() enum.PaymentMethodKind { return enum.PaymentMethodCrypto }
func (m CryptoMethod) isPaymentMethod()             {}

// DisplayTitle prefixes the generic title with the uppercased currency kind,
// e.g. "BTC Wallet".
func (m CryptoMethod) DisplayTitle() string {
	cur := strings.ToUpper(strings.TrimSpace(m.Currency))
	if cur == "" {
		return "Crypto Wallet"
	}
	return cur + " Wallet"
}

func (m CryptoMethod) DisplayValue() string {
	return joinPresent(m.Address, m.Memo)
}

// OtherMethod is a free-form payment method.
type OtherMethod struct {
	MethodID uuid.UUID
	Name     string
	Details  string
}

func (m OtherMethod) ID() uuid.UUID                { return m.MethodID }
func (m OtherMethod) Kind() enum.PaymentMethodKind { return enum.PaymentMethodOther }
func (m OtherMethod) isPaymentMethod()             {}

func (m OtherMethod) DisplayTitle() string {
	if strings.TrimSpace(m.Name) == "" {
		return "Other"
	}
	return m.Name
}

func (m OtherMethod) DisplayValue() string { return strings.TrimSpace(m.Details) }
