// Package cli implements the fincalc command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/internal/engine"
	"github.com/iwvelando/fincalc/internal/logging"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/iwvelando/fincalc/pkg/output"
	"github.com/iwvelando/fincalc/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// options holds the persistent flags shared by every command.
type options struct {
	outputFormat string
	logLevel     string
	logFormat    string
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "fincalc",
		Short:         "Indian personal finance calculators",
		Long:          "Loan EMI, investment growth, retirement and salary tax calculators with Indian currency formatting.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.outputFormat, "output-format", "", "output format override: pretty, csv, json")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format override (json, console)")

	root.AddCommand(
		newRunCommand(opts),
		newServeCommand(opts),
		newWordsCommand(),
		newCalculatorsCommand(),
		newVersionCommand(),
	)
	for _, def := range calculatorCommands {
		root.AddCommand(newCalculatorCommand(opts, def))
	}
	return root
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// logger builds the zap logger from a logging section, applying flag overrides.
func (o *options) logger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if o.logFormat != "" {
		cfg.Format = o.logFormat
	}
	logger, err := logging.NewLogger(cfg, o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// format resolves the output format: flag, then configured value, then pretty.
func (o *options) format(configured string) (string, error) {
	outputFormat := configured
	if o.outputFormat != "" {
		outputFormat = o.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}

func printResults(w io.Writer, outputFormat string, results []engine.Result) error {
	if err := output.Render(w, outputFormat, results); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	return nil
}
