package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables (SQL) or indexes (MongoDB)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			s, err := openStore(cmd.Context(), cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			if err := s.Migrate(cmd.Context()); err != nil {
				return err
			}
			logger.Info().Str("backend", cfg.Database.Backend()).Msg("migration complete")
			return nil
		},
	}
}
