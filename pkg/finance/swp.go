package finance

import (
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
)

// WithdrawalPlan describes a systematic withdrawal from an invested corpus.
// The monthly withdrawal is fixed from the initial corpus and never recomputed.
type WithdrawalPlan struct {
	Corpus                float64
	WithdrawalRatePercent float64
	AnnualRatePercent     float64
	Years                 int
}

// DecumulationState is the corpus after one month of the plan.
type DecumulationState struct {
	Month                    int
	RemainingCorpus          float64
	CumulativeWithdrawn      float64
	CumulativeInterestEarned float64
}

// WithdrawalSnapshot aggregates one year of the plan.
type WithdrawalSnapshot struct {
	Year            int
	Withdrawal      float64
	Interest        float64
	RemainingCorpus float64
}

// SWPResult is the outcome of a withdrawal plan.
type SWPResult struct {
	MonthlyWithdrawal float64
	TotalWithdrawn    float64
	RemainingCorpus   float64
	TotalInterest     float64
	Monthly           []DecumulationState
	Yearly            []WithdrawalSnapshot
}

// MonthlyWithdrawal returns the fixed amount withdrawn every month.
func (p WithdrawalPlan) MonthlyWithdrawal() float64 {
	return mathutil.ApplyPercentage(p.Corpus, p.WithdrawalRatePercent) / constants.MonthsPerYear
}

// SWP steps the plan month by month: interest accrues, then the withdrawal is
// taken. The corpus is floored at zero and the plan runs to term even after
// the corpus is exhausted; withdrawals keep counting toward the total.
func SWP(plan WithdrawalPlan) SWPResult {
	if !positive(plan.Corpus, plan.WithdrawalRatePercent, plan.AnnualRatePercent) || plan.Years <= 0 || plan.Years > constants.MaxTermYears {
		return SWPResult{Monthly: []DecumulationState{}, Yearly: []WithdrawalSnapshot{}}
	}

	withdrawal := plan.MonthlyWithdrawal()
	rate := mathutil.MonthlyRate(plan.AnnualRatePercent)
	months := plan.Years * constants.MonthsPerYear

	monthly := make([]DecumulationState, 0, months)
	yearly := make([]WithdrawalSnapshot, 0, plan.Years)

	balance, withdrawn, earned := plan.Corpus, 0.0, 0.0
	yearWithdrawal, yearInterest := 0.0, 0.0
	for month := 1; month <= months; month++ {
		interest := balance * rate
		balance = mathutil.NonNegative(balance + interest - withdrawal)

		earned += interest
		withdrawn += withdrawal
		yearInterest += interest
		yearWithdrawal += withdrawal

		monthly = append(monthly, DecumulationState{
			Month:                    month,
			RemainingCorpus:          balance,
			CumulativeWithdrawn:      withdrawn,
			CumulativeInterestEarned: earned,
		})

		if month%constants.MonthsPerYear == 0 {
			yearly = append(yearly, WithdrawalSnapshot{
				Year:            month / constants.MonthsPerYear,
				Withdrawal:      yearWithdrawal,
				Interest:        yearInterest,
				RemainingCorpus: balance,
			})
			yearWithdrawal, yearInterest = 0, 0
		}
	}

	return SWPResult{
		MonthlyWithdrawal: withdrawal,
		TotalWithdrawn:    withdrawn,
		RemainingCorpus:   balance,
		TotalInterest:     earned,
		Monthly:           monthly,
		Yearly:            yearly,
	}
}
