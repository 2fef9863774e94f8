package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// APPEARANCE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// APPEARANCE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("APPEARANCE_LOG_LEVEL"), os.Getenv("APPEARANCE_LOG_FORMAT"))
}

// FileConfig enables an additional rotated JSON log file.
type FileConfig struct {
	Enabled bool
	Rotator RotatorConfig
	// WriteToStderr keeps the primary output alongside the file.
	WriteToStderr bool
}

// NewWithFile creates a logger that also writes JSON lines to a rotated
// file. The returned cleanup closes the file and is never nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	rotator, err := NewLogRotator(fileCfg.Rotator)
	if err != nil {
		return New(cfg), func() {}, err
	}
	cleanup := func() { _ = rotator.Close() }

	if !fileCfg.WriteToStderr {
		fileOnly := cfg
		fileOnly.Format = "json"
		fileOnly.Output = rotator
		return New(fileOnly), cleanup, nil
	}

	primary := cfg.Output
	if primary == nil {
		primary = os.Stderr
	}
	if cfg.Format == "console" {
		primary = zerolog.ConsoleWriter{Out: primary, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(primary, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, cleanup, nil
}
