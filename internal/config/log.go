package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogConfig holds settings for diagnostic logging.
type LogConfig struct {
	// Level is a zerolog level name such as "debug" or "warn"
	Level string `yaml:"level"`

	// Format is "console" for human readable lines or "json"
	Format string `yaml:"format"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn", Format: "console"}
}

// Validate checks the level name and format.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level: %w: %w", errors.ErrInvalidConfig, err)
	}
	switch l.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("log format %q is not console or json: %w", l.Format, errors.ErrInvalidConfig)
	}
}

// NewLogger builds a logger writing to w at the configured level.
func (l *LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if l.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
