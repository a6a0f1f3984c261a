package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/finance"
	"github.com/iwvelando/fincalc/pkg/loans"
	"github.com/iwvelando/fincalc/pkg/tax"
	"github.com/iwvelando/fincalc/pkg/validation"
)

// ErrTermTooLong is returned for a calculation whose term exceeds
// constants.MaxTermYears.
var ErrTermTooLong = errors.New("term too long")

// CheckTerm rejects terms longer than constants.MaxTermYears. Unlike the range
// warnings this is a hard limit: schedule sizes grow with the term.
func (c Calculation) CheckTerm() error {
	if c.TermMonths > constants.MaxTermMonths || c.Months > constants.MaxTermMonths {
		return fmt.Errorf("%w: at most %d months are supported", ErrTermTooLong, constants.MaxTermMonths)
	}
	if c.Years > constants.MaxTermYears {
		return fmt.Errorf("%w: years %v exceeds the maximum of %d", ErrTermTooLong, c.Years, constants.MaxTermYears)
	}
	return nil
}

// ValidateType checks that the calculation names a supported calculator.
func (c Calculation) ValidateType() error {
	return validation.ValidateCalculationType(c.Type)
}

func (c Calculation) isSalary() bool {
	switch c.Type {
	case constants.TypeSalaryOld, constants.TypeSalaryNew, constants.TypeSalaryCompare:
		return true
	}
	return false
}

// usesWholeYears reports whether the calculator only accepts an integer term in years.
func (c Calculation) usesWholeYears() bool {
	switch c.Type {
	case constants.TypeSIP, constants.TypeStepUpSIP, constants.TypeNPS,
		constants.TypePPF, constants.TypeEPF, constants.TypeSWP:
		return true
	}
	return false
}

// WholeYears is the term in years with any fraction dropped.
func (c Calculation) WholeYears() int {
	if math.IsNaN(c.Years) || c.Years <= 0 || c.Years > constants.MaxTermYears {
		return 0
	}
	return int(math.Trunc(c.Years))
}

// LoanTerms converts an EMI calculation. termMonths wins over years.
func (c Calculation) LoanTerms() loans.LoanTerms {
	months := c.TermMonths
	if months == 0 {
		months = loans.TermMonthsFromYears(c.Years)
	}
	return loans.LoanTerms{
		Principal:         c.Principal,
		AnnualRatePercent: c.AnnualRate,
		TermMonths:        months,
	}
}

// RDMonths is the recurring deposit tenure: months, or years converted to months.
func (c Calculation) RDMonths() int {
	if c.Months != 0 {
		return c.Months
	}
	return loans.TermMonthsFromYears(c.Years)
}

// Frequency parses the FD compounding frequency.
func (c Calculation) Frequency() (finance.Frequency, error) {
	return finance.ParseFrequency(c.Compounding)
}

// EPFInput converts an EPF calculation.
func (c Calculation) EPFInput() finance.EPFInput {
	return finance.EPFInput{
		MonthlySalary:       c.MonthlySalary,
		EmployeeRatePercent: c.EmployeeRate,
		EmployerRatePercent: c.EmployerRate,
		AnnualRatePercent:   c.AnnualRate,
		Years:               c.WholeYears(),
	}
}

// WithdrawalPlan converts an SWP calculation.
func (c Calculation) WithdrawalPlan() finance.WithdrawalPlan {
	return finance.WithdrawalPlan{
		Corpus:                c.Corpus,
		WithdrawalRatePercent: c.WithdrawalRate,
		AnnualRatePercent:     c.AnnualRate,
		Years:                 c.WholeYears(),
	}
}

// SalaryComponents converts the salary section. A missing section yields zero
// components.
func (c Calculation) SalaryComponents() tax.SalaryComponents {
	if c.Salary == nil {
		return tax.SalaryComponents{}
	}
	s := c.Salary
	return tax.SalaryComponents{
		Basic:             s.Basic,
		HRA:               s.HRA,
		SpecialAllowance:  s.SpecialAllowance,
		OtherAllowances:   s.OtherAllowances,
		StandardDeduction: s.StandardDeduction,
		Section80C:        s.Section80C,
		Section80D:        s.Section80D,
		Section80TTA:      s.Section80TTA,
		RentPaid:          s.RentPaid,
		MetroCity:         s.MetroCity,
		CTC:               s.CTC,
	}
}

// LimitValues returns the inputs of the calculation keyed by field name, as
// checked against validation.CalculatorLimits.
func (c Calculation) LimitValues() map[string]float64 {
	switch c.Type {
	case constants.TypeEMI:
		return map[string]float64{
			"principal":  c.Principal,
			"annualRate": c.AnnualRate,
			"termMonths": float64(c.LoanTerms().TermMonths),
		}
	case constants.TypeSIP, constants.TypeNPS:
		return map[string]float64{"monthlyAmount": c.MonthlyAmount, "annualRate": c.AnnualRate, "years": c.Years}
	case constants.TypeStepUpSIP:
		return map[string]float64{
			"monthlyAmount": c.MonthlyAmount,
			"stepUpRate":    c.StepUpRate,
			"annualRate":    c.AnnualRate,
			"years":         c.Years,
		}
	case constants.TypeRD:
		return map[string]float64{"monthlyAmount": c.MonthlyAmount, "annualRate": c.AnnualRate, "months": float64(c.RDMonths())}
	case constants.TypeLumpsum, constants.TypeFD:
		return map[string]float64{"principal": c.Principal, "annualRate": c.AnnualRate, "years": c.Years}
	case constants.TypePPF:
		return map[string]float64{"annualContribution": c.AnnualContribution, "annualRate": c.AnnualRate, "years": c.Years}
	case constants.TypeEPF:
		return map[string]float64{
			"monthlySalary": c.MonthlySalary,
			"employeeRate":  c.EmployeeRate,
			"employerRate":  c.EmployerRate,
			"annualRate":    c.AnnualRate,
			"years":         c.Years,
		}
	case constants.TypeSWP:
		return map[string]float64{
			"corpus":         c.Corpus,
			"withdrawalRate": c.WithdrawalRate,
			"annualRate":     c.AnnualRate,
			"years":          c.Years,
		}
	}
	return nil
}

func checkLimits(label string, c Calculation) []string {
	return validation.CheckLimits(label, c.Type, c.LimitValues())
}
