// Package config defines the data structures of a calculation file and
// includes functions for loading, converting and validating it.
package config

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds a calculation file.
type Configuration struct {
	Logging      LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Output       OutputConfig  `yaml:"output,omitempty" json:"output,omitempty"`
	Calculations []Calculation `yaml:"calculations" json:"calculations"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // pretty, csv, json
}

// Calculation is one named calculator invocation. Only the fields relevant to
// Type are read.
type Calculation struct {
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type" json:"type"`
	Active bool   `yaml:"active" json:"active"`

	Principal  float64 `yaml:"principal,omitempty" json:"principal,omitempty"`
	AnnualRate float64 `yaml:"annualRate,omitempty" json:"annualRate,omitempty"`
	TermMonths int     `yaml:"termMonths,omitempty" json:"termMonths,omitempty"`
	Years      float64 `yaml:"years,omitempty" json:"years,omitempty"`
	Months     int     `yaml:"months,omitempty" json:"months,omitempty"`

	MonthlyAmount      float64 `yaml:"monthlyAmount,omitempty" json:"monthlyAmount,omitempty"`
	AnnualContribution float64 `yaml:"annualContribution,omitempty" json:"annualContribution,omitempty"`
	StepUpRate         float64 `yaml:"stepUpRate,omitempty" json:"stepUpRate,omitempty"`
	Compounding        string  `yaml:"compounding,omitempty" json:"compounding,omitempty"`

	Corpus         float64 `yaml:"corpus,omitempty" json:"corpus,omitempty"`
	WithdrawalRate float64 `yaml:"withdrawalRate,omitempty" json:"withdrawalRate,omitempty"`

	MonthlySalary float64 `yaml:"monthlySalary,omitempty" json:"monthlySalary,omitempty"`
	EmployeeRate  float64 `yaml:"employeeRate,omitempty" json:"employeeRate,omitempty"`
	EmployerRate  float64 `yaml:"employerRate,omitempty" json:"employerRate,omitempty"`

	Salary *SalaryConfig `yaml:"salary,omitempty" json:"salary,omitempty"`
}

// SalaryConfig holds yearly salary figures for the in-hand calculators.
type SalaryConfig struct {
	Basic             float64 `yaml:"basic" json:"basic"`
	HRA               float64 `yaml:"hra" json:"hra"`
	SpecialAllowance  float64 `yaml:"specialAllowance" json:"specialAllowance"`
	OtherAllowances   float64 `yaml:"otherAllowances" json:"otherAllowances"`
	StandardDeduction float64 `yaml:"standardDeduction" json:"standardDeduction"`
	Section80C        float64 `yaml:"section80C,omitempty" json:"section80C,omitempty"`
	Section80D        float64 `yaml:"section80D,omitempty" json:"section80D,omitempty"`
	Section80TTA      float64 `yaml:"section80TTA,omitempty" json:"section80TTA,omitempty"`
	RentPaid          float64 `yaml:"rentPaid,omitempty" json:"rentPaid,omitempty"`
	MetroCity         bool    `yaml:"metroCity,omitempty" json:"metroCity,omitempty"`
	CTC               float64 `yaml:"ctc,omitempty" json:"ctc,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	configuration.applyDefaults()
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return decode(v)
}

func (c *Configuration) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
}

// ActiveCalculations returns the calculations flagged active, in file order.
func (c *Configuration) ActiveCalculations() []Calculation {
	var active []Calculation
	for _, calc := range c.Calculations {
		if calc.Active {
			active = append(active, calc)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Nothing reported here prevents a calculation from running.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Calculations) == 0 {
		return append(warnings, "No calculations defined")
	}
	if len(c.ActiveCalculations()) == 0 {
		warnings = append(warnings, "No active calculations found - no output will be generated")
	}

	seen := make(map[string]bool)
	for i, calc := range c.Calculations {
		label := calc.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
			warnings = append(warnings, fmt.Sprintf("Calculation %s has no name", label))
		} else if seen[calc.Name] {
			warnings = append(warnings, fmt.Sprintf("Duplicate calculation name '%s'", calc.Name))
		}
		seen[calc.Name] = true

		warnings = append(warnings, calc.Validate(label)...)
	}

	return warnings
}

// Validate returns warnings for a single calculation identified by label.
func (c Calculation) Validate(label string) []string {
	var warnings []string

	if err := c.ValidateType(); err != nil {
		return append(warnings, fmt.Sprintf("Calculation '%s': %v", label, err))
	}

	if err := c.CheckTerm(); err != nil {
		return append(warnings, fmt.Sprintf("Calculation '%s': %v", label, err))
	}

	if c.usesWholeYears() && c.Years != math.Trunc(c.Years) {
		warnings = append(warnings, fmt.Sprintf("Calculation '%s': years %v will be truncated to %d",
			label, c.Years, c.WholeYears()))
	}

	if c.Type == constants.TypeFD {
		if _, err := c.Frequency(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Calculation '%s': %v", label, err))
		}
	}

	if c.isSalary() && c.Salary == nil {
		warnings = append(warnings, fmt.Sprintf("Calculation '%s': no salary section provided", label))
	}

	return append(warnings, checkLimits(label, c)...)
}
