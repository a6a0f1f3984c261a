// Package engine selects the formula for a calculation and shapes its outcome
// into a Result for the renderers and the HTTP API.
package engine

import (
	"errors"
	"fmt"

	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/loans"
	"go.uber.org/zap"
)

// ErrUnknownType is returned for a calculation whose type has no calculator.
var ErrUnknownType = errors.New("unknown calculator type")

// strategy computes one calculator type.
type strategy struct {
	description string
	compute     func(e *Engine, calc config.Calculation) (Result, error)
}

var strategies = map[string]strategy{
	constants.TypeEMI:           {"Loan EMI with full amortization schedule", (*Engine).emi},
	constants.TypeSIP:           {"Systematic investment plan", (*Engine).sip},
	constants.TypeStepUpSIP:     {"SIP with a yearly contribution step-up", (*Engine).stepUpSIP},
	constants.TypeNPS:           {"National Pension System corpus", (*Engine).nps},
	constants.TypeRD:            {"Recurring deposit", (*Engine).rd},
	constants.TypeLumpsum:       {"One-time investment compounded annually", (*Engine).lumpsum},
	constants.TypeFD:            {"Fixed deposit with configurable compounding", (*Engine).fd},
	constants.TypePPF:           {"Public Provident Fund", (*Engine).ppf},
	constants.TypeEPF:           {"Employees' Provident Fund", (*Engine).epf},
	constants.TypeSWP:           {"Systematic withdrawal plan", (*Engine).swp},
	constants.TypeSalaryOld:     {"In-hand salary under the old tax regime", (*Engine).salaryOld},
	constants.TypeSalaryNew:     {"In-hand salary under the new tax regime", (*Engine).salaryNew},
	constants.TypeSalaryCompare: {"Old versus new tax regime comparison", (*Engine).salaryCompare},
}

// Descriptor names a calculator for listings.
type Descriptor struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Calculators lists every supported calculator in display order.
func Calculators() []Descriptor {
	descriptors := make([]Descriptor, 0, len(constants.CalculatorTypes))
	for _, calcType := range constants.CalculatorTypes {
		descriptors = append(descriptors, Descriptor{Type: calcType, Description: strategies[calcType].description})
	}
	return descriptors
}

// Engine evaluates calculations.
type Engine struct {
	logger    *zap.Logger
	schedules *loans.AmortizationScheduleGenerator
}

// NewEngine creates an engine. A nil logger is replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:    logger,
		schedules: loans.NewAmortizationScheduleGenerator(logger),
	}
}

// Calculate evaluates a single calculation regardless of its active flag.
func (e *Engine) Calculate(calc config.Calculation) (Result, error) {
	s, ok := strategies[calc.Type]
	if !ok {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownType, calc.Type)
	}

	if err := calc.CheckTerm(); err != nil {
		return Result{}, fmt.Errorf("calculation %s: %w", calc.Name, err)
	}

	result, err := s.compute(e, calc)
	if err != nil {
		return Result{}, fmt.Errorf("calculation %s: %w", calc.Name, err)
	}
	result.sanitize()
	result.Name = calc.Name
	result.Type = calc.Type
	if result.Summary == nil {
		result.Summary = []Metric{}
	}
	if result.Columns == nil {
		result.Columns = []Column{}
	}
	if result.Rows == nil {
		result.Rows = [][]float64{}
	}

	e.logger.Debug(fmt.Sprintf("computed %s calculation %s", calc.Type, calc.Name),
		zap.String("op", "engine.Calculate"),
		zap.Int("rows", len(result.Rows)),
	)
	return result, nil
}

// Run evaluates every active calculation of a configuration in file order.
func (e *Engine) Run(conf config.Configuration) ([]Result, error) {
	var results []Result
	for _, calc := range conf.Calculations {
		if !calc.Active {
			e.logger.Debug(fmt.Sprintf("skipping calculation %s because it is inactive", calc.Name),
				zap.String("op", "engine.Run"),
			)
			continue
		}

		result, err := e.Calculate(calc)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
