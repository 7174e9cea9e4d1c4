// Package moneyfmt renders monetary values using Brazilian conventions:
// dot thousands separators and a comma decimal mark.
package moneyfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BRL returns a currency string with the R$ symbol, e.g. "-R$ 1.234,56".
func BRL(amount decimal.Decimal) string {
	formatted := formatPositive(amount.Abs())
	if amount.IsNegative() {
		return "-R$ " + formatted
	}
	return "R$ " + formatted
}

// Numeric returns a currency string without the symbol, e.g. "-1.234,56".
func Numeric(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + formatPositive(amount.Abs())
}

// Percent renders a ratio as a percentage with two decimal places and a
// comma decimal mark, e.g. "28,00%".
func Percent(ratio decimal.Decimal) string {
	fixed := ratio.Mul(decimal.NewFromInt(100)).StringFixed(2)
	return strings.ReplaceAll(fixed, ".", ",") + "%"
}

func formatPositive(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte('.')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "," + decPart
}
