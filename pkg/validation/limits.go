package validation

import (
	"fmt"
	"sort"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/format"
)

// Range is an inclusive bound on an input value.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Limits maps a calculation field to its accepted range.
type Limits map[string]Range

// CalculatorLimits holds the bounds of each calculator's input widgets.
// Values outside these bounds are still computed.
var CalculatorLimits = map[string]Limits{
	constants.TypeEMI: {
		"principal":  {0, constants.MaxPrincipal},
		"annualRate": {0, 50},
		"termMonths": {12, 480},
	},
	constants.TypeSIP: {
		"monthlyAmount": {0, constants.MaxPrincipal},
		"annualRate":    {1, 30},
		"years":         {1, 40},
	},
	constants.TypeStepUpSIP: {
		"monthlyAmount": {0, constants.MaxMonthlyContribution},
		"stepUpRate":    {5, 25},
		"annualRate":    {8, 18},
		"years":         {5, 30},
	},
	constants.TypeNPS: {
		"monthlyAmount": {0, constants.MaxMonthlyContribution},
		"annualRate":    {7, 12},
		"years":         {5, 40},
	},
	constants.TypeRD: {
		"monthlyAmount": {0, constants.MaxMonthlyContribution},
		"annualRate":    {5, 9},
		"months":        {6, 120},
	},
	constants.TypeLumpsum: {
		"principal":  {0, constants.MaxPrincipal},
		"annualRate": {1, 30},
		"years":      {1, 30},
	},
	constants.TypeFD: {
		"principal":  {0, constants.MaxPrincipal},
		"annualRate": {1, 15},
		"years":      {1, 10},
	},
	constants.TypePPF: {
		"annualContribution": {0, constants.MaxPPFContribution},
		"annualRate":         {7, 8},
		"years":              {1, 15},
	},
	constants.TypeEPF: {
		"monthlySalary": {0, constants.MaxEPFSalary},
		"employeeRate":  {1, 12},
		"employerRate":  {1, 12},
		"annualRate":    {7, 9},
		"years":         {1, 40},
	},
	constants.TypeSWP: {
		"corpus":         {0, constants.MaxPrincipal},
		"withdrawalRate": {1, 12},
		"annualRate":     {5, 12},
		"years":          {5, 30},
	},
}

// CheckRange returns a warning when value lies outside r, or an empty string.
func CheckRange(calcName, field string, value float64, r Range) string {
	if r.Contains(value) {
		return ""
	}
	return fmt.Sprintf("Calculation '%s': %s %s is outside the supported range %s to %s",
		calcName, field, format.Number(value), format.Number(r.Min), format.Number(r.Max))
}

// CheckLimits compares the supplied field values against the limits of the
// calculator type. Fields without a limit are ignored. Warnings are ordered by
// field name.
func CheckLimits(calcName, calcType string, values map[string]float64) []string {
	limits, ok := CalculatorLimits[calcType]
	if !ok {
		return nil
	}

	fields := make([]string, 0, len(values))
	for field := range values {
		if _, limited := limits[field]; limited {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	var warnings []string
	for _, field := range fields {
		if warning := CheckRange(calcName, field, values[field], limits[field]); warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}
