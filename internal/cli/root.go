// Package cli wires configuration, logging and the store into the cobra
// commands of the hospital-api binary.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hospital-api-server/internal/config"
	"hospital-api-server/internal/logging"
)

// Execute runs the root command. Without a subcommand it serves HTTP.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hospital-api",
		Short:         "Hospital appointment scheduling and analytics API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd)
		},
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	return rootCmd
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}
