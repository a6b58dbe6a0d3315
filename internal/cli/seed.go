package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hospital-api-server/internal/seed"
)

func seedCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a demo data set",
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

			if migrate {
				if err := s.Migrate(cmd.Context()); err != nil {
					return err
				}
			}
			res, err := seed.Run(cmd.Context(), s, time.Now())
			if err != nil {
				return err
			}
			logger.Info().
				Int("doctors", res.Doctors).
				Int("patients", res.Patients).
				Int("appointments", res.Appointments).
				Msg("seed complete")
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before seeding")
	return cmd
}
