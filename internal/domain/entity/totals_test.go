package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/docuflow/docuflow-api/internal/domain/enum"
	"github.com/docuflow/docuflow-api/pkg/apperror"
)

func mustItem(t *testing.T, desc, qty, rate string) LineItem {
	t.Helper()
	li, err := NewLineItem(desc, qty, rate)
	require.NoError(t, err)
	return li
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(t, want).Equal(got), "want %s, got %s", want, got.String())
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid decimals", func(t *testing.T) {
		li, err := NewLineItem("Design work", "2.5", "120.00")
		require.NoError(t, err)
		requireDecimalEqual(t, "300", li.Total())
	})

	t.Run("malformed quantity", func(t *testing.T) {
		_, err := NewLineItem("x", "two", "10")
		require.Error(t, err)
		require.True(t, errors.Is(err, apperror.ErrInvalidAmount))
	})

	t.Run("malformed rate", func(t *testing.T) {
		_, err := NewLineItem("x", "1", "10.0.0")
		require.True(t, errors.Is(err, apperror.ErrInvalidAmount))
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		_, err := NewLineItem("x", "1", "-5")
		require.True(t, errors.Is(err, apperror.ErrInvalidAmount))
	})
}

func TestSubtotalExactness(t *testing.T) {
	// 0.1 * 0.3 summed ten times drifts in binary floating point; the
	// decimal model must land on exactly 0.3.
	inv := Invoice{}
	for i := 0; i < 10; i++ {
		inv.Items = append(inv.Items, mustItem(t, "unit", "0.1", "0.3"))
	}
	requireDecimalEqual(t, "0.3", inv.Subtotal())
}

func TestTotalsScenarios(t *testing.T) {
	t.Run("three items no tax no discount", func(t *testing.T) {
		inv := Invoice{Items: []LineItem{
			mustItem(t, "a", "2", "10.00"),
			mustItem(t, "b", "1", "5.50"),
			mustItem(t, "c", "4", "1.25"),
		}}
		totals := inv.Totals("USD")
		requireDecimalEqual(t, "30.50", totals.Subtotal)
		requireDecimalEqual(t, "0", totals.Tax)
		requireDecimalEqual(t, "0", totals.Discount)
		requireDecimalEqual(t, "30.50", totals.Total)
	})

	t.Run("percentage tax", func(t *testing.T) {
		inv := Invoice{
			Items:   []LineItem{mustItem(t, "a", "1", "100.00")},
			TaxRate: dec(t, "8.25"),
			TaxKind: enum.TaxKindPercentage,
		}
		totals := inv.Totals("USD")
		requireDecimalEqual(t, "8.25", totals.Tax)
		requireDecimalEqual(t, "108.25", totals.Total)
	})

	t.Run("fixed tax", func(t *testing.T) {
		inv := Invoice{
			Items:   []LineItem{mustItem(t, "a", "1", "100.00")},
			TaxRate: dec(t, "12.40"),
			TaxKind: enum.TaxKindFixed,
		}
		requireDecimalEqual(t, "12.40", inv.TaxAmount())
		requireDecimalEqual(t, "112.40", inv.Total())
	})

	t.Run("fixed discount exceeding subtotal is clamped", func(t *testing.T) {
		inv := Invoice{
			Items:           []LineItem{mustItem(t, "a", "1", "100.00")},
			DiscountValue:   dec(t, "150.00"),
			DiscountKind:    enum.DiscountKindFixed,
			DiscountEnabled: true,
		}
		totals := inv.Totals("USD")
		requireDecimalEqual(t, "100.00", totals.Discount)
		requireDecimalEqual(t, "0", totals.Total)
	})

	t.Run("clamp ceiling includes tax", func(t *testing.T) {
		inv := Invoice{
			Items:           []LineItem{mustItem(t, "a", "1", "100.00")},
			TaxRate:         dec(t, "10"),
			TaxKind:         enum.TaxKindPercentage,
			DiscountValue:   dec(t, "150.00"),
			DiscountKind:    enum.DiscountKindFixed,
			DiscountEnabled: true,
		}
		// subtotal 100 + tax 10 caps the discount at 110
		requireDecimalEqual(t, "110", inv.DiscountAmount())
		requireDecimalEqual(t, "0", inv.Total())
	})

	t.Run("discount at exactly subtotal plus tax", func(t *testing.T) {
		inv := Invoice{
			Items:           []LineItem{mustItem(t, "a", "1", "100.00")},
			TaxRate:         dec(t, "10"),
			TaxKind:         enum.TaxKindPercentage,
			DiscountValue:   dec(t, "110.00"),
			DiscountKind:    enum.DiscountKindFixed,
			DiscountEnabled: true,
		}
		requireDecimalEqual(t, "110.00", inv.DiscountAmount())
		requireDecimalEqual(t, "0", inv.Total())
	})

	t.Run("percentage discount", func(t *testing.T) {
		inv := Invoice{
			Items:           []LineItem{mustItem(t, "a", "1", "200.00")},
			DiscountValue:   dec(t, "25"),
			DiscountKind:    enum.DiscountKindPercentage,
			DiscountEnabled: true,
		}
		requireDecimalEqual(t, "50", inv.DiscountAmount())
		requireDecimalEqual(t, "150", inv.Total())
	})

	t.Run("disabled discount is zero", func(t *testing.T) {
		inv := Invoice{
			Items:         []LineItem{mustItem(t, "a", "1", "200.00")},
			DiscountValue: dec(t, "25"),
			DiscountKind:  enum.DiscountKindPercentage,
		}
		requireDecimalEqual(t, "0", inv.DiscountAmount())
		requireDecimalEqual(t, "200", inv.Total())
	})

	t.Run("zero tax rate contributes nothing", func(t *testing.T) {
		inv := Invoice{
			Items:   []LineItem{mustItem(t, "a", "1", "50.00")},
			TaxKind: enum.TaxKindPercentage,
		}
		requireDecimalEqual(t, "0", inv.TaxAmount())
	})
}

func TestAmountsNeverNegative(t *testing.T) {
	kinds := []struct {
		name         string
		taxKind      enum.TaxKind
		discountKind enum.DiscountKind
		enabled      bool
	}{
		{"pct tax pct discount", enum.TaxKindPercentage, enum.DiscountKindPercentage, true},
		{"pct tax fixed discount", enum.TaxKindPercentage, enum.DiscountKindFixed, true},
		{"fixed tax pct discount", enum.TaxKindFixed, enum.DiscountKindPercentage, true},
		{"fixed tax fixed discount", enum.TaxKindFixed, enum.DiscountKindFixed, true},
		{"discount disabled", enum.TaxKindPercentage, enum.DiscountKindFixed, false},
	}
	for _, tc := range kinds {
		t.Run(tc.name, func(t *testing.T) {
			inv := Invoice{
				Items:           []LineItem{mustItem(t, "a", "3", "19.99")},
				TaxRate:         dec(t, "7.5"),
				TaxKind:         tc.taxKind,
				DiscountValue:   dec(t, "999"),
				DiscountKind:    tc.discountKind,
				DiscountEnabled: tc.enabled,
			}
			require.False(t, inv.TaxAmount().IsNegative())
			require.False(t, inv.DiscountAmount().IsNegative())
			require.False(t, inv.Total().IsNegative())
		})
	}
}

func TestSubtotalOrderIndependent(t *testing.T) {
	a := Invoice{Items: []LineItem{
		mustItem(t, "a", "1.1", "3.33"),
		mustItem(t, "b", "7", "0.07"),
		mustItem(t, "c", "2", "19.99"),
	}}
	b := Invoice{Items: []LineItem{a.Items[2], a.Items[0], a.Items[1]}}
	require.True(t, a.Subtotal().Equal(b.Subtotal()))
}
