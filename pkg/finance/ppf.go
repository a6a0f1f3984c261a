package finance

import (
	"math"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// PPF computes a Public Provident Fund account funded at the start of each year.
// The statutory deposit ceiling is not enforced here.
func PPF(annualContribution, annualRatePercent float64, years int) GrowthResult {
	if !positive(annualContribution, annualRatePercent) || years <= 0 || years > constants.MaxTermYears {
		return emptyGrowth()
	}

	rate := mathutil.PercentToDecimal(annualRatePercent)
	series := make([]GrowthSnapshot, 0, years)
	for year := 1; year <= years; year++ {
		series = append(series, newSnapshot(year, annualContribution,
			annualContribution*float64(year), ppfValue(annualContribution, rate, year)))
	}

	invested := annualContribution * float64(years)
	total := ppfValue(annualContribution, rate, years)
	return GrowthResult{
		Invested:   invested,
		TotalValue: total,
		Returns:    total - invested,
		Series:     series,
	}
}

// ppfValue sums every deposit k compounded for years-k+1 periods.
func ppfValue(contribution, rate float64, years int) float64 {
	total := 0.0
	for k := 1; k <= years; k++ {
		total += contribution * math.Pow(1+rate, float64(years-k+1))
	}
	return total
}
