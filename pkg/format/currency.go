// Package format provides currency string formatting for reports.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56"). Amounts are rounded half-up to cents;
// the engine itself never rounds.
func Currency(amount float64) string {
	formatted := groupThousands(decimal.NewFromFloat(amount).Abs().Round(2).StringFixed(2))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + groupThousands(decimal.NewFromFloat(amount).Abs().Round(2).StringFixed(2))
}

// Percent formats a percentage with two decimals (e.g., "6.13%").
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Round(2).StringFixed(2) + "%"
}

func groupThousands(fixed string) string {
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
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
