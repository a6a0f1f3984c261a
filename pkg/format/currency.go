// Package format renders amounts the way Indian calculators display them: rupee
// currency with lakh/crore digit grouping and amounts spelled out in words.
package format

import (
	"strings"

	"github.com/iwvelando/fincalc/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes every currency string.
const RupeeSymbol = "₹"

// maxFractionDigits mirrors the en-IN default for plain numbers.
const maxFractionDigits = 3

// INR returns a whole-rupee currency string with en-IN grouping (e.g., "₹12,34,568", "-₹1,235").
func INR(amount float64) string {
	rounded := decimal.NewFromFloat(mathutil.Sanitize(amount)).Round(0)
	formatted := RupeeSymbol + groupIndian(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// NumericINR returns a whole-rupee amount with en-IN grouping but no currency symbol (e.g., "12,34,568").
func NumericINR(amount float64) string {
	rounded := decimal.NewFromFloat(mathutil.Sanitize(amount)).Round(0)
	formatted := groupIndian(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Number formats a plain number with en-IN grouping and up to three fractional digits (e.g., "12,34,567.891").
func Number(amount float64) string {
	rounded := decimal.NewFromFloat(mathutil.Sanitize(amount)).Round(maxFractionDigits)
	parts := strings.SplitN(rounded.Abs().String(), ".", 2)
	formatted := groupIndian(parts[0])
	if len(parts) == 2 {
		formatted += "." + parts[1]
	}
	if rounded.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Percent formats a percentage with up to two fractional digits (e.g., "8.15%").
func Percent(value float64) string {
	return decimal.NewFromFloat(mathutil.Sanitize(value)).Round(2).String() + "%"
}

// groupIndian inserts separators after the last three digits and then after every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var builder strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		builder.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(head[i : i+2])
	}
	builder.WriteByte(',')
	builder.WriteString(tail)
	return builder.String()
}
