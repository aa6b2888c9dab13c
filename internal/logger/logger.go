// Package logger builds the process logger. Components receive a
// zerolog.Logger by value; nothing in this repository logs through a
// package global.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level and rendering for the process logger.
type Config struct {
	Level  string `yaml:"level"`  // zerolog level name, default "info"
	Format string `yaml:"format"` // "json" (default) or "console"
	Output string `yaml:"output"` // "stdout" (default) or "stderr"
}

// New builds a logger from cfg. Zero-value fields fall back to
// info-level JSON on stdout, so an empty config section still yields a
// working logger.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}
	}

	var out io.Writer
	switch cfg.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log output %q", cfg.Output)
	}

	switch cfg.Format {
	case "", "json":
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
