package tax

import (
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(constants.PercentageMultiplier)

// Breakdown itemises a tax computation. Total is rounded to whole rupees.
type Breakdown struct {
	TaxableIncome float64
	BaseTax       float64
	RebateApplied bool
	Surcharge     float64
	SurchargeRate float64
	Cess          float64
	Total         int64
}

// Compute applies the brackets, rebate, surcharge and cess to a taxable income.
// Non-positive income is taxed at zero.
func (r Regime) Compute(taxableIncome float64) Breakdown {
	taxableIncome = mathutil.Sanitize(taxableIncome)
	if taxableIncome <= 0 {
		return Breakdown{}
	}
	income := decimal.NewFromFloat(taxableIncome)

	base := r.baseTax(income)
	out := Breakdown{TaxableIncome: taxableIncome, BaseTax: base.InexactFloat64()}

	if income.LessThanOrEqual(r.RebateThreshold) {
		out.RebateApplied = true
		base = decimal.Zero
	}

	rate := r.surchargeRate(income)
	surcharge := base.Mul(rate).Div(hundred)
	cess := base.Add(surcharge).Mul(r.CessPercent).Div(hundred)

	out.Surcharge = surcharge.InexactFloat64()
	out.SurchargeRate = rate.InexactFloat64()
	out.Cess = cess.InexactFloat64()
	out.Total = base.Add(surcharge).Add(cess).Round(0).IntPart()
	return out
}

// Tax returns the total tax payable in whole rupees.
func (r Regime) Tax(taxableIncome float64) int64 {
	return r.Compute(taxableIncome).Total
}

// baseTax accumulates marginal tax across the brackets.
func (r Regime) baseTax(income decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range r.Brackets {
		if income.LessThanOrEqual(lower) {
			break
		}
		upper := income
		if !b.Unbounded && b.UpperBound.LessThan(income) {
			upper = b.UpperBound
		}
		tax = tax.Add(upper.Sub(lower).Mul(b.RatePercent).Div(hundred))
		if b.Unbounded {
			break
		}
		lower = b.UpperBound
	}
	return tax
}

// surchargeRate returns the rate of the highest tier the income exceeds.
func (r Regime) surchargeRate(income decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, tier := range r.Surcharges {
		if income.GreaterThan(tier.Threshold) {
			rate = tier.RatePercent
		}
	}
	return rate
}

// OldRegimeTax is the old regime tax on a taxable income.
func OldRegimeTax(taxableIncome float64) int64 {
	return OldRegime().Tax(taxableIncome)
}

// NewRegimeTax is the new regime tax on a taxable income.
func NewRegimeTax(taxableIncome float64) int64 {
	return NewRegime().Tax(taxableIncome)
}
