package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"hospital-api-server/internal/config"
	"hospital-api-server/internal/store"
	"hospital-api-server/internal/store/mongostore"
	"hospital-api-server/internal/store/sqlstore"
)

// openStore builds the configured backend. Neither backend dials eagerly, so
// an unreachable database surfaces as a warning here and as 500s later.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (store.Store, error) {
	var (
		s   store.Store
		err error
	)
	switch cfg.Backend() {
	case config.BackendMongo:
		s, err = mongostore.Open(ctx, cfg.URL, cfg.MongoDatabase)
	default:
		var dsn string
		dsn, err = cfg.MySQLDSN()
		if err != nil {
			return nil, err
		}
		s, err = sqlstore.Open(dsn, logger)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("backend", cfg.Backend()).Msg("database unreachable at startup")
	} else {
		logger.Info().Str("backend", cfg.Backend()).Msg("database connected")
	}
	return s, nil
}
