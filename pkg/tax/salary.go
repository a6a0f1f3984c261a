package tax

import (
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// SalaryComponents are the yearly salary figures. The section and rent fields
// only matter under the old regime. CTC is informational.
type SalaryComponents struct {
	Basic             float64
	HRA               float64
	SpecialAllowance  float64
	OtherAllowances   float64
	StandardDeduction float64
	Section80C        float64
	Section80D        float64
	Section80TTA      float64
	RentPaid          float64
	MetroCity         bool
	CTC               float64
}

// Gross is the sum of all salary components.
func (s SalaryComponents) Gross() float64 {
	return mathutil.Sanitize(s.Basic) + mathutil.Sanitize(s.HRA) +
		mathutil.Sanitize(s.SpecialAllowance) + mathutil.Sanitize(s.OtherAllowances)
}

// SalaryResult is the in-hand salary under one regime.
type SalaryResult struct {
	Regime        string
	Gross         float64
	HRAExemption  float64
	Deductions    float64
	TaxableIncome float64
	Tax           Breakdown
	InHandYearly  float64
	InHandMonthly float64
}

// InHand computes the take-home salary for the given deductions and regime.
func InHand(regime Regime, gross, deductions, hraExemption float64) SalaryResult {
	if gross <= 0 {
		return SalaryResult{Regime: regime.Name}
	}

	taxable := mathutil.NonNegative(gross - deductions)
	breakdown := regime.Compute(taxable)
	inHand := gross - float64(breakdown.Total)
	return SalaryResult{
		Regime:        regime.Name,
		Gross:         gross,
		HRAExemption:  hraExemption,
		Deductions:    deductions,
		TaxableIncome: taxable,
		Tax:           breakdown,
		InHandYearly:  inHand,
		InHandMonthly: mathutil.RoundHalfUp(inHand / constants.MonthsPerYear),
	}
}

// OldRegimeDeductions caps the section deductions and adds the standard
// deduction and HRA exemption.
func OldRegimeDeductions(s SalaryComponents) (deductions, hraExemption float64) {
	hraExemption = HRAExemption(s.HRA, s.RentPaid, s.Basic, s.MetroCity)
	deductions = mathutil.Min(mathutil.Sanitize(s.Section80C), constants.Section80CCap) +
		mathutil.Min(mathutil.Sanitize(s.Section80D), constants.Section80DCap) +
		mathutil.Min(mathutil.Sanitize(s.Section80TTA), constants.Section80TTACap) +
		mathutil.Sanitize(s.StandardDeduction) +
		hraExemption
	return deductions, hraExemption
}

// OldRegimeInHand computes take-home salary under the old regime.
func OldRegimeInHand(s SalaryComponents) SalaryResult {
	deductions, hraExemption := OldRegimeDeductions(s)
	return InHand(OldRegime(), s.Gross(), deductions, hraExemption)
}

// NewRegimeInHand computes take-home salary under the new regime, which only
// allows the standard deduction.
func NewRegimeInHand(s SalaryComponents) SalaryResult {
	return InHand(NewRegime(), s.Gross(), mathutil.Sanitize(s.StandardDeduction), 0)
}

// Comparison contrasts both regimes for the same salary.
type Comparison struct {
	Old         SalaryResult
	New         SalaryResult
	Recommended string
	Savings     float64
}

// Compare evaluates both regimes. The regime with the lower tax is recommended;
// the new regime wins ties.
func Compare(s SalaryComponents) Comparison {
	oldResult := OldRegimeInHand(s)
	newResult := NewRegimeInHand(s)

	c := Comparison{Old: oldResult, New: newResult, Recommended: newResult.Regime}
	if oldResult.Tax.Total < newResult.Tax.Total {
		c.Recommended = oldResult.Regime
	}
	diff := oldResult.Tax.Total - newResult.Tax.Total
	if diff < 0 {
		diff = -diff
	}
	c.Savings = float64(diff)
	return c
}
