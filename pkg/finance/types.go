// Package finance provides the growth and withdrawal calculators: SIP, NPS,
// RD, step-up SIP, lump sum, fixed deposit, PPF, EPF and SWP.
//
// Every calculator is a pure function. Missing or NaN inputs behave like 0 and
// any non-positive required parameter yields a zero result with an empty,
// non-nil series.
package finance

import "github.com/iwvelando/fincalc/pkg/mathutil"

// GrowthSnapshot captures an investment at the end of one period of its series.
type GrowthSnapshot struct {
	Period                 int
	PeriodContribution     float64
	CumulativeContribution float64
	TotalValue             float64
	CumulativeReturns      float64
}

// GrowthResult is the outcome of an accumulation calculator.
type GrowthResult struct {
	Invested   float64
	TotalValue float64
	Returns    float64
	Series     []GrowthSnapshot
}

func emptyGrowth() GrowthResult {
	return GrowthResult{Series: []GrowthSnapshot{}}
}

func newSnapshot(period int, contribution, invested, value float64) GrowthSnapshot {
	return GrowthSnapshot{
		Period:                 period,
		PeriodContribution:     contribution,
		CumulativeContribution: invested,
		TotalValue:             value,
		CumulativeReturns:      value - invested,
	}
}

// positive reports whether every value is a positive finite number.
func positive(values ...float64) bool {
	for _, v := range values {
		if mathutil.Sanitize(v) <= 0 {
			return false
		}
	}
	return true
}
