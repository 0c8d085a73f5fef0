package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docuflow/docuflow-api/internal/domain/enum"
)

func TestPaymentMethodDisplay(t *testing.T) {
	t.Run("bank iban joins present fields", func(t *testing.T) {
		m := BankIBANMethod{IBAN: "DE89370400440532013000", SwiftCode: "COBADEFF", Beneficiary: "Acme GmbH"}
		require.Equal(t, "Bank Transfer (IBAN)", m.DisplayTitle())
		require.Equal(t, "DE89370400440532013000 · COBADEFF · Acme GmbH", m.DisplayValue())
		require.Equal(t, enum.PaymentMethodBankIBAN, m.Kind())
	})

	t.Run("bank iban skips blank fields", func(t *testing.T) {
		m := BankIBANMethod{IBAN: "DE89370400440532013000", SwiftCode: "  "}
		require.Equal(t, "DE89370400440532013000", m.DisplayValue())
	})

	t.Run("bank us", func(t *testing.T) {
		m := BankUSMethod{AccountNumber: "000123456789", RoutingNumber: "110000000", BankName: "First National"}
		require.Equal(t, "Bank Transfer (US)", m.DisplayTitle())
		require.Equal(t, "000123456789 · 110000000 · First National", m.DisplayValue())
	})

	t.Run("paypal trims email", func(t *testing.T) {
		m := PayPalMethod{Email: " billing@acme.test "}
		require.Equal(t, "PayPal", m.DisplayTitle())
		require.Equal(t, "billing@acme.test", m.DisplayValue())
	})

	t.Run("card link", func(t *testing.T) {
		m := CardLinkMethod{URL: "https://pay.acme.test/inv-42"}
		require.Equal(t, "Pay by Card", m.DisplayTitle())
		require.Equal(t, "https://pay.acme.test/inv-42", m.DisplayValue())
	})

	t.Run("crypto title uppercases currency", func(t *testing.T) {
		m := CryptoMethod{Currency: "btc", Address: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"}
		require.Equal(t, "BTC Wallet", m.DisplayTitle())
		require.Equal(t, "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", m.DisplayValue())
	})

	t.Run("crypto without currency falls back", func(t *testing.T) {
		m := CryptoMethod{Address: "addr", Memo: "tag 7"}
		require.Equal(t, "Crypto Wallet", m.DisplayTitle())
		require.Equal(t, "addr · tag 7", m.DisplayValue())
	})

	t.Run("other uses custom name", func(t *testing.T) {
		m := OtherMethod{Name: "Cash on delivery", Details: "Exact change appreciated"}
		require.Equal(t, "Cash on delivery", m.DisplayTitle())
		require.Equal(t, "Exact change appreciated", m.DisplayValue())
	})

	t.Run("other without name falls back", func(t *testing.T) {
		m := OtherMethod{}
		require.Equal(t, "Other", m.DisplayTitle())
		require.Empty(t, m.DisplayValue())
	})
}
