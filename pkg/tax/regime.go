// Package tax computes Indian personal income tax under the old and new
// regimes, the HRA exemption and the resulting in-hand salary.
package tax

import (
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/shopspring/decimal"
)

// Bracket is one marginal slab. The last bracket of a regime is Unbounded.
type Bracket struct {
	UpperBound  decimal.Decimal
	Unbounded   bool
	RatePercent decimal.Decimal
}

// SurchargeTier applies RatePercent of the base tax once income exceeds Threshold.
type SurchargeTier struct {
	Threshold   decimal.Decimal
	RatePercent decimal.Decimal
}

// Regime is a complete tax schedule.
type Regime struct {
	Name            string
	Brackets        []Bracket
	RebateThreshold decimal.Decimal
	Surcharges      []SurchargeTier
	CessPercent     decimal.Decimal
}

func bracket(upper int64, rate float64) Bracket {
	return Bracket{UpperBound: decimal.NewFromInt(upper), RatePercent: decimal.NewFromFloat(rate)}
}

func topBracket(rate float64) Bracket {
	return Bracket{Unbounded: true, RatePercent: decimal.NewFromFloat(rate)}
}

func standardSurcharges() []SurchargeTier {
	return []SurchargeTier{
		{Threshold: decimal.NewFromInt(50 * constants.Lakh), RatePercent: decimal.NewFromInt(10)},
		{Threshold: decimal.NewFromInt(constants.Crore), RatePercent: decimal.NewFromInt(15)},
		{Threshold: decimal.NewFromInt(2 * constants.Crore), RatePercent: decimal.NewFromInt(25)},
		{Threshold: decimal.NewFromInt(5 * constants.Crore), RatePercent: decimal.NewFromInt(37)},
	}
}

// OldRegime returns the old regime schedule: 0/5/20/30% with a rebate up to 5 lakh.
func OldRegime() Regime {
	return Regime{
		Name: "old",
		Brackets: []Bracket{
			bracket(250000, 0),
			bracket(500000, 5),
			bracket(1000000, 20),
			topBracket(30),
		},
		RebateThreshold: decimal.NewFromInt(500000),
		Surcharges:      standardSurcharges(),
		CessPercent:     decimal.NewFromFloat(constants.CessPercent),
	}
}

// NewRegime returns the new regime schedule: 0/5/10/15/20/30% with a rebate up to 7 lakh.
func NewRegime() Regime {
	return Regime{
		Name: "new",
		Brackets: []Bracket{
			bracket(300000, 0),
			bracket(600000, 5),
			bracket(900000, 10),
			bracket(1200000, 15),
			bracket(1500000, 20),
			topBracket(30),
		},
		RebateThreshold: decimal.NewFromInt(700000),
		Surcharges:      standardSurcharges(),
		CessPercent:     decimal.NewFromFloat(constants.CessPercent),
	}
}
