package cli

import (
	"fmt"

	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/internal/engine"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// calculatorCommand describes a direct calculator subcommand. bind registers
// flags that write into the calculation; defaults mirror a fresh calculator page.
type calculatorCommand struct {
	calcType string
	short    string
	example  string
	bind     func(cmd *cobra.Command, calc *config.Calculation)
}

var calculatorCommands = []calculatorCommand{
	{
		calcType: constants.TypeEMI,
		short:    "Loan EMI with the full amortization schedule",
		example:  "  fincalc emi --principal 1000000 --rate 8.5 --years 20",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.Principal, "principal", 1000000, "loan amount")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 8.5, "annual interest rate in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 20, "tenure in years")
			cmd.Flags().IntVar(&c.TermMonths, "months", 0, "tenure in months, overrides --years")
		},
	},
	{
		calcType: constants.TypeSIP,
		short:    "Systematic investment plan maturity",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.MonthlyAmount, "monthly", 10000, "monthly investment")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 12, "expected annual return in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 10, "investment period in years")
		},
	},
	{
		calcType: constants.TypeStepUpSIP,
		short:    "SIP whose contribution grows every year",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.MonthlyAmount, "monthly", 5000, "first-year monthly investment")
			cmd.Flags().Float64Var(&c.StepUpRate, "step-up", 10, "yearly contribution increase in percent")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 12, "expected annual return in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 20, "investment period in years")
		},
	},
	{
		calcType: constants.TypeNPS,
		short:    "National Pension System corpus",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.MonthlyAmount, "monthly", 5000, "monthly contribution")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 9, "expected annual return in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 30, "years until retirement")
		},
	},
	{
		calcType: constants.TypeRD,
		short:    "Recurring deposit maturity",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.MonthlyAmount, "monthly", 10000, "monthly deposit")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 6.5, "annual interest rate in percent")
			cmd.Flags().IntVar(&c.Months, "months", 60, "deposit tenure in months")
		},
	},
	{
		calcType: constants.TypeLumpsum,
		short:    "One-time investment growth",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.Principal, "amount", 100000, "amount invested")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 12, "expected annual return in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 10, "investment period in years")
		},
	},
	{
		calcType: constants.TypeFD,
		short:    "Fixed deposit maturity",
		example:  "  fincalc fd --amount 100000 --rate 7.5 --years 5 --compounding monthly",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.Principal, "amount", 100000, "deposit amount")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 7.5, "annual interest rate in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 5, "deposit tenure in years")
			cmd.Flags().StringVar(&c.Compounding, "compounding", "quarterly", "compounding frequency: monthly, quarterly, annually")
		},
	},
	{
		calcType: constants.TypePPF,
		short:    "Public Provident Fund maturity",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.AnnualContribution, "annual", 150000, "yearly deposit")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 7.1, "annual interest rate in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 15, "account tenure in years")
		},
	},
	{
		calcType: constants.TypeEPF,
		short:    "Employees' Provident Fund corpus",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.MonthlySalary, "salary", 50000, "monthly basic salary")
			cmd.Flags().Float64Var(&c.EmployeeRate, "employee", 12, "employee contribution in percent of salary")
			cmd.Flags().Float64Var(&c.EmployerRate, "employer", 12, "employer contribution in percent of salary")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 8.15, "annual interest rate in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 30, "years of service")
		},
	},
	{
		calcType: constants.TypeSWP,
		short:    "Systematic withdrawal plan",
		bind: func(cmd *cobra.Command, c *config.Calculation) {
			cmd.Flags().Float64Var(&c.Corpus, "corpus", 10000000, "initial corpus")
			cmd.Flags().Float64Var(&c.WithdrawalRate, "withdrawal", 6, "yearly withdrawal in percent of the initial corpus")
			cmd.Flags().Float64Var(&c.AnnualRate, "rate", 8, "expected annual return in percent")
			cmd.Flags().Float64Var(&c.Years, "years", 20, "withdrawal period in years")
		},
	},
	{calcType: constants.TypeSalaryOld, short: "In-hand salary under the old tax regime", bind: bindSalary},
	{calcType: constants.TypeSalaryNew, short: "In-hand salary under the new tax regime", bind: bindSalary},
	{calcType: constants.TypeSalaryCompare, short: "Compare in-hand salary across tax regimes", bind: bindSalary},
}

func bindSalary(cmd *cobra.Command, c *config.Calculation) {
	s := &config.SalaryConfig{}
	c.Salary = s
	cmd.Flags().Float64Var(&s.Basic, "basic", 400000, "yearly basic salary")
	cmd.Flags().Float64Var(&s.HRA, "hra", 200000, "yearly house rent allowance")
	cmd.Flags().Float64Var(&s.SpecialAllowance, "special", 200000, "yearly special allowance")
	cmd.Flags().Float64Var(&s.OtherAllowances, "other", 200000, "yearly other allowances")
	cmd.Flags().Float64Var(&s.StandardDeduction, "standard-deduction", 50000, "standard deduction")
	cmd.Flags().Float64Var(&s.Section80C, "80c", 150000, "section 80C investments (old regime)")
	cmd.Flags().Float64Var(&s.Section80D, "80d", 25000, "section 80D health insurance (old regime)")
	cmd.Flags().Float64Var(&s.Section80TTA, "80tta", 10000, "section 80TTA savings interest (old regime)")
	cmd.Flags().Float64Var(&s.RentPaid, "rent", 120000, "yearly rent paid")
	cmd.Flags().BoolVar(&s.MetroCity, "metro", true, "rent is paid in a metro city")
	cmd.Flags().Float64Var(&s.CTC, "ctc", 0, "cost to company, shown for reference")
}

func newCalculatorCommand(opts *options, def calculatorCommand) *cobra.Command {
	calc := config.Calculation{Type: def.calcType, Active: true}

	cmd := &cobra.Command{
		Use:     def.calcType,
		Short:   def.short,
		Example: def.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if calc.Name == "" {
				calc.Name = def.calcType
			}
			op := "cli." + def.calcType

			logger, err := opts.logger(config.LoggingConfig{})
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			outputFormat, err := opts.format("")
			if err != nil {
				return err
			}

			for _, warning := range calc.Validate(calc.Name) {
				logger.Warn("Input warning: "+warning, zap.String("op", op))
			}

			result, err := engine.NewEngine(logger).Calculate(calc)
			if err != nil {
				return fmt.Errorf("failed to compute %s: %w", def.calcType, err)
			}
			return printResults(cmd.OutOrStdout(), outputFormat, []engine.Result{result})
		},
	}

	cmd.Flags().StringVar(&calc.Name, "name", "", "label shown in the output (defaults to the calculator type)")
	def.bind(cmd, &calc)
	return cmd
}
