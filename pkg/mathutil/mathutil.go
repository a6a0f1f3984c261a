// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/fincalc/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundHalfUp rounds to the nearest integer with halves going toward positive infinity.
func RoundHalfUp(val float64) float64 {
	return math.Floor(val + 0.5)
}

// Sanitize coerces NaN and infinite inputs to zero so that missing values behave like 0.
func Sanitize(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// NonNegative floors a value at zero.
func NonNegative(val float64) float64 {
	if val < 0 {
		return 0
	}
	return val
}

// PercentToDecimal converts a percentage (12.5) into its decimal form (0.125).
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// MonthlyRate converts an annual percentage rate into the periodic monthly rate.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / constants.MonthsPerYear / constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
