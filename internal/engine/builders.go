package engine

import (
	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/finance"
	"github.com/iwvelando/fincalc/pkg/format"
	"github.com/iwvelando/fincalc/pkg/tax"
)

func (e *Engine) emi(calc config.Calculation) (Result, error) {
	loan := e.schedules.Amortize(calc.LoanTerms())

	rows := make([][]float64, 0, len(loan.Breakdown))
	for _, row := range loan.Breakdown {
		rows = append(rows, []float64{float64(row.Period), row.Principal, row.Interest, row.RemainingBalance})
	}

	principal := 0.0
	if loan.MonthlyPayment > 0 {
		principal = calc.Principal
	}
	return Result{
		Summary: []Metric{
			currency("monthlyPayment", "Monthly EMI", loan.MonthlyPayment),
			currency("principal", "Principal Amount", principal),
			currency("totalInterest", "Total Interest", loan.TotalInterest),
			currency("totalPayment", "Total Payment", loan.TotalPayment),
		},
		Columns: []Column{
			column("month", "Month", KindCount),
			column("principal", "Principal", KindCurrency),
			column("interest", "Interest", KindCurrency),
			column("balance", "Balance", KindCurrency),
		},
		Rows:  rows,
		Words: format.NumberToWords(loan.TotalPayment),
	}, nil
}

// growthResult shapes the common accumulation calculators.
func growthResult(growth finance.GrowthResult, periodLabel string) Result {
	rows := make([][]float64, 0, len(growth.Series))
	for _, s := range growth.Series {
		rows = append(rows, []float64{float64(s.Period), s.CumulativeContribution, s.TotalValue, s.CumulativeReturns})
	}
	return Result{
		Summary: []Metric{
			currency("invested", "Invested Amount", growth.Invested),
			currency("returns", "Estimated Returns", growth.Returns),
			currency("totalValue", "Total Value", growth.TotalValue),
		},
		Columns: []Column{
			column(periodKey(periodLabel), periodLabel, KindCount),
			column("invested", "Invested", KindCurrency),
			column("totalValue", "Total Value", KindCurrency),
			column("returns", "Returns", KindCurrency),
		},
		Rows:  rows,
		Words: format.NumberToWords(growth.TotalValue),
	}
}

func periodKey(label string) string {
	if label == "Month" {
		return "month"
	}
	return "year"
}

func (e *Engine) sip(calc config.Calculation) (Result, error) {
	return growthResult(finance.SIP(calc.MonthlyAmount, calc.AnnualRate, calc.WholeYears()), "Year"), nil
}

func (e *Engine) nps(calc config.Calculation) (Result, error) {
	return growthResult(finance.NPS(calc.MonthlyAmount, calc.AnnualRate, calc.WholeYears()), "Year"), nil
}

func (e *Engine) rd(calc config.Calculation) (Result, error) {
	return growthResult(finance.RD(calc.MonthlyAmount, calc.AnnualRate, calc.RDMonths()), "Month"), nil
}

func (e *Engine) lumpsum(calc config.Calculation) (Result, error) {
	return growthResult(finance.Lumpsum(calc.Principal, calc.AnnualRate, calc.Years), "Year"), nil
}

func (e *Engine) stepUpSIP(calc config.Calculation) (Result, error) {
	growth := finance.StepUpSIP(calc.MonthlyAmount, calc.StepUpRate, calc.AnnualRate, calc.WholeYears())

	rows := make([][]float64, 0, len(growth.Series))
	for _, s := range growth.Series {
		rows = append(rows, []float64{float64(s.Period), s.PeriodContribution, s.CumulativeContribution, s.TotalValue, s.CumulativeReturns})
	}
	return Result{
		Summary: []Metric{
			currency("invested", "Invested Amount", growth.Invested),
			currency("returns", "Estimated Returns", growth.Returns),
			currency("totalValue", "Total Value", growth.TotalValue),
		},
		Columns: []Column{
			column("year", "Year", KindCount),
			column("monthlyContribution", "Monthly SIP", KindCurrency),
			column("invested", "Invested", KindCurrency),
			column("totalValue", "Total Value", KindCurrency),
			column("returns", "Returns", KindCurrency),
		},
		Rows:  rows,
		Words: format.NumberToWords(growth.TotalValue),
	}, nil
}

func (e *Engine) fd(calc config.Calculation) (Result, error) {
	frequency, err := calc.Frequency()
	if err != nil {
		return Result{}, err
	}
	growth := finance.FixedDeposit(calc.Principal, calc.AnnualRate, calc.Years, frequency)
	return maturityResult(growth, "principal", "Principal Amount", text("compounding", "Compounding", frequency.String())), nil
}

func (e *Engine) ppf(calc config.Calculation) (Result, error) {
	growth := finance.PPF(calc.AnnualContribution, calc.AnnualRate, calc.WholeYears())
	return maturityResult(growth, "invested", "Total Investment"), nil
}

// maturityResult shapes the deposit calculators whose returns are called interest.
func maturityResult(growth finance.GrowthResult, investedKey, investedLabel string, extra ...Metric) Result {
	rows := make([][]float64, 0, len(growth.Series))
	for _, s := range growth.Series {
		rows = append(rows, []float64{float64(s.Period), s.CumulativeContribution, s.TotalValue, s.CumulativeReturns})
	}
	summary := []Metric{
		currency(investedKey, investedLabel, growth.Invested),
		currency("interest", "Total Interest", growth.Returns),
		currency("maturityValue", "Maturity Value", growth.TotalValue),
	}
	return Result{
		Summary: append(summary, extra...),
		Columns: []Column{
			column("year", "Year", KindCount),
			column(investedKey, investedLabel, KindCurrency),
			column("totalValue", "Total Value", KindCurrency),
			column("interest", "Interest", KindCurrency),
		},
		Rows:  rows,
		Words: format.NumberToWords(growth.TotalValue),
	}
}

func (e *Engine) epf(calc config.Calculation) (Result, error) {
	epf := finance.EPF(calc.EPFInput())

	rows := make([][]float64, 0, len(epf.Series))
	for _, s := range epf.Series {
		rows = append(rows, []float64{float64(s.Year), s.Employee, s.Employer, s.TotalValue, s.Returns})
	}
	return Result{
		Summary: []Metric{
			currency("employeeContribution", "Employee Contribution", epf.EmployeeContribution),
			currency("employerContribution", "Employer Contribution", epf.EmployerContribution),
			currency("interest", "Total Interest", epf.Interest),
			currency("maturityValue", "Maturity Value", epf.MaturityValue),
		},
		Columns: []Column{
			column("year", "Year", KindCount),
			column("employee", "Employee", KindCurrency),
			column("employer", "Employer", KindCurrency),
			column("totalValue", "Total Value", KindCurrency),
			column("returns", "Returns", KindCurrency),
		},
		Rows:  rows,
		Words: format.NumberToWords(epf.MaturityValue),
	}, nil
}

func (e *Engine) swp(calc config.Calculation) (Result, error) {
	swp := finance.SWP(calc.WithdrawalPlan())

	rows := make([][]float64, 0, len(swp.Yearly))
	for _, y := range swp.Yearly {
		rows = append(rows, []float64{float64(y.Year), y.Withdrawal, y.Interest, y.RemainingCorpus})
	}
	return Result{
		Summary: []Metric{
			currency("monthlyWithdrawal", "Monthly Withdrawal", swp.MonthlyWithdrawal),
			currency("totalWithdrawal", "Total Withdrawal", swp.TotalWithdrawn),
			currency("remainingCorpus", "Remaining Corpus", swp.RemainingCorpus),
			currency("totalInterest", "Total Interest Earned", swp.TotalInterest),
		},
		Columns: []Column{
			column("year", "Year", KindCount),
			column("withdrawal", "Withdrawal", KindCurrency),
			column("interest", "Interest", KindCurrency),
			column("remainingCorpus", "Remaining Corpus", KindCurrency),
		},
		Rows:  rows,
		Words: format.NumberToWords(swp.TotalWithdrawn),
	}, nil
}

func salarySummary(s tax.SalaryResult, components tax.SalaryComponents, withHRA bool) []Metric {
	var summary []Metric
	if components.CTC > 0 {
		summary = append(summary, currency("ctc", "CTC", components.CTC))
	}
	summary = append(summary, currency("gross", "Gross Salary", s.Gross))
	if withHRA {
		summary = append(summary, currency("hraExemption", "HRA Exemption", s.HRAExemption))
	}
	effectiveRate := 0.0
	if s.Gross > 0 {
		effectiveRate = float64(s.Tax.Total) / s.Gross * constants.PercentageMultiplier
	}
	return append(summary,
		currency("deductions", "Total Deductions", s.Deductions),
		currency("taxable", "Taxable Income", s.TaxableIncome),
		currency("tax", "Income Tax", float64(s.Tax.Total)),
		percent("effectiveTaxRate", "Effective Tax Rate", effectiveRate),
		currency("inHandYearly", "In-hand Yearly", s.InHandYearly),
		currency("inHandMonthly", "In-hand Monthly", s.InHandMonthly),
	)
}

func (e *Engine) salaryOld(calc config.Calculation) (Result, error) {
	components := calc.SalaryComponents()
	s := tax.OldRegimeInHand(components)
	return Result{Summary: salarySummary(s, components, true), Words: format.NumberToWords(s.InHandYearly)}, nil
}

func (e *Engine) salaryNew(calc config.Calculation) (Result, error) {
	components := calc.SalaryComponents()
	s := tax.NewRegimeInHand(components)
	return Result{Summary: salarySummary(s, components, false), Words: format.NumberToWords(s.InHandYearly)}, nil
}

func (e *Engine) salaryCompare(calc config.Calculation) (Result, error) {
	c := tax.Compare(calc.SalaryComponents())

	best := c.New
	if c.Recommended == c.Old.Regime {
		best = c.Old
	}
	return Result{
		Summary: []Metric{
			currency("gross", "Gross Salary", c.Old.Gross),
			currency("oldTax", "Old Regime Tax", float64(c.Old.Tax.Total)),
			currency("newTax", "New Regime Tax", float64(c.New.Tax.Total)),
			currency("oldInHandYearly", "Old Regime In-hand Yearly", c.Old.InHandYearly),
			currency("newInHandYearly", "New Regime In-hand Yearly", c.New.InHandYearly),
			currency("oldInHandMonthly", "Old Regime In-hand Monthly", c.Old.InHandMonthly),
			currency("newInHandMonthly", "New Regime In-hand Monthly", c.New.InHandMonthly),
			text("recommended", "Recommended Regime", c.Recommended),
			currency("savings", "Yearly Tax Saving", c.Savings),
		},
		Words: format.NumberToWords(best.InHandYearly),
	}, nil
}
