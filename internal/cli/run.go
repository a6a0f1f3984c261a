package cli

import (
	"fmt"

	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/internal/engine"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCommand(opts *options) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute every active calculation in a calculation file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.LoadConfiguration(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration at %s: %w", configPath, err)
			}

			logger, err := opts.logger(conf.Logging)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			outputFormat, err := opts.format(conf.Output.Format)
			if err != nil {
				return err
			}

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "cli.run"),
				)
			}

			results, err := engine.NewEngine(logger).Run(*conf)
			if err != nil {
				logger.Error("failed to compute calculations",
					zap.String("op", "cli.run"),
					zap.Error(err),
				)
				return err
			}

			return printResults(cmd.OutOrStdout(), outputFormat, results)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", constants.DefaultConfigFile, "path to calculation file")
	return cmd
}
