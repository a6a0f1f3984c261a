package finance

import (
	"math"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// ContributionPlan describes a stream of equal monthly contributions.
type ContributionPlan struct {
	MonthlyAmount     float64
	AnnualRatePercent float64
	Months            int
}

// FutureValueAnnuityDue returns the value after n periods of a contribution
// made at the start of every period and compounded at periodic rate r.
func FutureValueAnnuityDue(contribution, rate float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	if rate == 0 {
		return contribution * float64(periods)
	}
	growth := math.Pow(1+rate, float64(periods))
	return contribution * ((growth - 1) / rate) * (1 + rate)
}

func (p ContributionPlan) valid() bool {
	return positive(p.MonthlyAmount, p.AnnualRatePercent) && p.Months > 0 && p.Months <= constants.MaxTermMonths
}

// Grow evaluates the plan and reports a snapshot every step months, plus a
// final snapshot if the term is not a multiple of step.
func (p ContributionPlan) Grow(step int) GrowthResult {
	if !p.valid() || step <= 0 {
		return emptyGrowth()
	}

	rate := mathutil.MonthlyRate(p.AnnualRatePercent)
	series := make([]GrowthSnapshot, 0, p.Months/step+1)
	for month := step; month <= p.Months; month += step {
		series = append(series, newSnapshot(month/step, p.MonthlyAmount,
			p.MonthlyAmount*float64(month), FutureValueAnnuityDue(p.MonthlyAmount, rate, month)))
	}
	if p.Months%step != 0 {
		series = append(series, newSnapshot(p.Months/step+1, p.MonthlyAmount,
			p.MonthlyAmount*float64(p.Months), FutureValueAnnuityDue(p.MonthlyAmount, rate, p.Months)))
	}

	invested := p.MonthlyAmount * float64(p.Months)
	total := FutureValueAnnuityDue(p.MonthlyAmount, rate, p.Months)
	return GrowthResult{
		Invested:   invested,
		TotalValue: total,
		Returns:    total - invested,
		Series:     series,
	}
}

// SIP computes a systematic investment plan with a yearly series.
func SIP(monthlyAmount, annualRatePercent float64, years int) GrowthResult {
	if years <= 0 || years > constants.MaxTermYears {
		return emptyGrowth()
	}
	plan := ContributionPlan{MonthlyAmount: monthlyAmount, AnnualRatePercent: annualRatePercent, Months: years * constants.MonthsPerYear}
	return plan.Grow(constants.MonthsPerYear)
}

// NPS computes a National Pension System corpus. The contribution stream
// compounds exactly like a SIP.
func NPS(monthlyAmount, annualRatePercent float64, years int) GrowthResult {
	return SIP(monthlyAmount, annualRatePercent, years)
}

// RD computes a recurring deposit over a tenure in months with a monthly series.
func RD(monthlyAmount, annualRatePercent float64, months int) GrowthResult {
	plan := ContributionPlan{MonthlyAmount: monthlyAmount, AnnualRatePercent: annualRatePercent, Months: months}
	return plan.Grow(1)
}
