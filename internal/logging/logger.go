// Package logging builds the zerolog logger shared by the server and CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a JSON logger writing to w, or a human-readable console
// logger when pretty is set.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// GormLogger adapts logger for gorm: slow queries and errors only, and
// missing records are not logged since callers treat them as a normal result.
func GormLogger(logger zerolog.Logger) gormlogger.Interface {
	l := logger.With().Str("component", "gorm").Logger()
	return gormlogger.New(&l, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
