package enum

// PaymentMethodKind discriminates the payment method variants carried on an
// invoice. It is the wire-level tag; the entity package models each variant
// as its own type.
type PaymentMethodKind string

const (
	PaymentMethodBankIBAN PaymentMethodKind = "bank_iban"
	PaymentMethodBankUS   PaymentMethodKind = "bank_us"
	PaymentMethodPayPal   PaymentMethodKind = "paypal"
	PaymentMethodCardLink PaymentMethodKind = "card_link"
	PaymentMethodCrypto   PaymentMethodKind = "crypto"
	PaymentMethodOther    PaymentMethodKind = "other"
)

// IsValid reports whether k is one of the known payment method kinds.
func (k PaymentMethodKind) IsValid() bool {
	switch k {
	case PaymentMethodBankIBAN, PaymentMethodBankUS, PaymentMethodPayPal,
		PaymentMethodCardLink, PaymentMethodCrypto, PaymentMethodOther:
		return true
	}
	return false
}

func (k PaymentMethodKind) String() string {
	return string(k)
}
