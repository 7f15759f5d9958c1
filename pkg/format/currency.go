package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/loan-compare/pkg/constants"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a plain two-decimal amount with no symbol or
// separators (e.g., "-1234.56"), for machine-readable cells.
func NumericCurrency(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// YearsMonths renders a month count as a compact duration (e.g., "2y 5m").
func YearsMonths(months int) string {
	if months < 0 {
		months = 0
	}
	return fmt.Sprintf("%dy %dm", months/constants.MonthsPerYear, months%constants.MonthsPerYear)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
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
