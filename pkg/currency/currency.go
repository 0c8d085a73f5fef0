// Package currency provides best-effort, locale-lite formatting of monetary
// amounts and dates for document rendering. Formatting never fails: unknown
// currency codes fall back to a "CODE 1,234.56" rendering so a label is
// always produced.
package currency

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type info struct {
	symbol     string
	minorUnits int
}

// currencies is the subset of ISO 4217 the invoice editor offers, with the
// symbol and minor-unit count used for formatting and final rounding.
var currencies = map[string]info{
	"USD": {"$", 2},
	"EUR": {"€", 2},
	"GBP": {"£", 2},
	"CAD": {"$", 2},
	"AUD": {"$", 2},
	"NZD": {"$", 2},
	"CHF": {"CHF ", 2},
	"SEK": {"kr ", 2},
	"NOK": {"kr ", 2},
	"DKK": {"kr ", 2},
	"JPY": {"¥", 0},
	"CNY": {"¥", 2},
	"KRW": {"₩", 0},
	"INR": {"₹", 2},
	"BRL": {"R$ ", 2},
	"MXN": {"$", 2},
	"ZAR": {"R ", 2},
	"KES": {"KSh ", 2},
	"NGN": {"₦", 2},
	"AED": {"AED ", 2},
	"SAR": {"SAR ", 2},
	"SGD": {"$", 2},
	"HKD": {"$", 2},
	"BHD": {"BHD ", 3},
	"KWD": {"KWD ", 3},
	"OMR": {"OMR ", 3},
}

// MinorUnits returns the fractional digit count for a currency code.
// Unknown codes default to 2.
func MinorUnits(code string) int {
	if c, ok := currencies[normalize(code)]; ok {
		return c.minorUnits
	}
	return 2
}

// Symbol returns the display prefix for a currency code, or "CODE " for an
// unknown code.
func Symbol(code string) string {
	norm := normalize(code)
	if c, ok := currencies[norm]; ok {
		return c.symbol
	}
	if norm == "" {
		return ""
	}
	return norm + " "
}

// Format renders an amount with the currency's symbol, thousands separators
// and minor-unit precision, e.g. Format(1234.5, "USD") == "$1,234.50".
// Negative amounts carry a leading minus before the symbol.
func Format(amount decimal.Decimal, code string) string {
	digits := MinorUnits(code)
	rounded := amount.RoundBank(int32(digits))

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(int32(digits))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(Symbol(code))
	b.WriteString(group(intPart))
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatDate renders a date in medium style, e.g. "Jan 2, 2006". A zero time
// degrades to the empty string rather than a placeholder date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// group inserts comma separators into a digit string every three digits.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
