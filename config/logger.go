package config

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger. LOG_PRETTY=true switches to the
// human-readable console writer for local development.
func NewLogger() zerolog.Logger {
	var logger zerolog.Logger
	if os.Getenv("LOG_PRETTY") == "true" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	}
	return logger.With().Timestamp().Str("service", "clinic-scheduler").Logger()
}
