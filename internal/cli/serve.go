package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/fincalc/internal/server"
	"github.com/iwvelando/fincalc/pkg/constants"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	var (
		serverConfigPath string
		address          string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load server configuration at %s: %w", serverConfigPath, err)
			}
			if address != "" {
				cfg.Address = address
			}

			logger, err := opts.logger(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Serve(ctx, cfg, logger, Version)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return cmd
}
