// Package loans provides EMI and amortization schedule calculations.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/mathutil"
	"go.uber.org/zap"
)

// LoanTerms describes a fixed-rate amortizing loan.
type LoanTerms struct {
	Principal         float64
	AnnualRatePercent float64
	TermMonths        int
}

// AmortizationRow holds the values for a given payment period.
type AmortizationRow struct {
	Period           int
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// Result is the full outcome of an EMI calculation.
type Result struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
	Breakdown      []AmortizationRow
}

// sanitized returns the terms with NaN and infinite amounts treated as 0.
func (t LoanTerms) sanitized() LoanTerms {
	t.Principal = mathutil.Sanitize(t.Principal)
	t.AnnualRatePercent = mathutil.Sanitize(t.AnnualRatePercent)
	return t
}

// valid reports whether sanitized terms describe a non-degenerate amortization.
func (t LoanTerms) valid() bool {
	return t.Principal > 0 && t.AnnualRatePercent >= 0 &&
		t.TermMonths >= 1 && t.TermMonths <= constants.MaxTermMonths
}

// TermMonthsFromYears converts a tenure in years to whole months. Tenures
// longer than MaxTermYears yield 0.
func TermMonthsFromYears(years float64) int {
	years = mathutil.Sanitize(years)
	if years > constants.MaxTermYears {
		return 0
	}
	return int(math.Round(years * constants.MonthsPerYear))
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
// Degenerate terms yield 0.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	principal = mathutil.Sanitize(principal)
	annualInterestRate = mathutil.Sanitize(annualInterestRate)
	if principal <= 0 || termMonths < 1 || termMonths > constants.MaxTermMonths || annualInterestRate < 0 {
		return 0
	}

	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	return principal * periodicInterestRate * power / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return mathutil.Sanitize(remainingPrincipal) * mathutil.MonthlyRate(mathutil.Sanitize(annualInterestRate))
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates the per-period breakdown for a loan. Components and
// balances are clamped at zero so the final period never overshoots.
func (g *AmortizationScheduleGenerator) GenerateSchedule(terms LoanTerms) []AmortizationRow {
	terms = terms.sanitized()
	if !terms.valid() {
		g.logger.Debug("degenerate loan terms, returning empty schedule",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("principal", terms.Principal),
			zap.Float64("rate", terms.AnnualRatePercent),
			zap.Int("termMonths", terms.TermMonths),
		)
		return []AmortizationRow{}
	}

	monthlyPayment := CalculateMonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermMonths)
	schedule := make([]AmortizationRow, 0, terms.TermMonths)
	balance := terms.Principal

	for period := 1; period <= terms.TermMonths; period++ {
		interest := CalculateInterestPayment(balance, terms.AnnualRatePercent)
		principal := monthlyPayment - interest
		balance -= principal

		schedule = append(schedule, AmortizationRow{
			Period:           period,
			Principal:        mathutil.NonNegative(principal),
			Interest:         mathutil.NonNegative(interest),
			RemainingBalance: mathutil.NonNegative(balance),
		})
	}

	g.logger.Debug(fmt.Sprintf("generated %d-month schedule with payment %.2f", terms.TermMonths, monthlyPayment),
		zap.String("op", "loans.GenerateSchedule"),
	)
	return schedule
}

// Amortize computes the payment, totals and full schedule for a loan.
func (g *AmortizationScheduleGenerator) Amortize(terms LoanTerms) Result {
	terms = terms.sanitized()
	if !terms.valid() {
		return Result{Breakdown: []AmortizationRow{}}
	}

	payment := CalculateMonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermMonths)
	totalPayment := payment * float64(terms.TermMonths)
	return Result{
		MonthlyPayment: payment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment - terms.Principal,
		Breakdown:      g.GenerateSchedule(terms),
	}
}

// EMI is a convenience wrapper that amortizes without logging.
func EMI(terms LoanTerms) Result {
	return NewAmortizationScheduleGenerator(nil).Amortize(terms)
}
