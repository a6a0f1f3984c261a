package finance

import (
	"math"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// StepUpSIP computes a SIP whose monthly contribution grows by stepUpPercent at
// every anniversary. The contribution made in month m compounds for n-m+1
// months. Each yearly snapshot values all contributions made so far at the end
// of that year, so the last snapshot equals the total value.
func StepUpSIP(monthlyAmount, stepUpPercent, annualRatePercent float64, years int) GrowthResult {
	if !positive(monthlyAmount, stepUpPercent, annualRatePercent) || years <= 0 || years > constants.MaxTermYears {
		return emptyGrowth()
	}

	rate := mathutil.MonthlyRate(annualRatePercent)
	stepUp := mathutil.PercentToDecimal(stepUpPercent)
	series := make([]GrowthSnapshot, 0, years)

	invested, value := 0.0, 0.0
	for year := 1; year <= years; year++ {
		contribution := monthlyAmount * math.Pow(1+stepUp, float64(year-1))
		for month := 0; month < constants.MonthsPerYear; month++ {
			invested += contribution
			value = (value + contribution) * (1 + rate)
		}
		series = append(series, newSnapshot(year, contribution, invested, value))
	}

	return GrowthResult{
		Invested:   invested,
		TotalValue: value,
		Returns:    value - invested,
		Series:     series,
	}
}
