package config

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

var validLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "disabled": {},
}

// validateConfig checks normalized values and reports every problem at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateColorScheme(config)...)
	validationErrors = append(validationErrors, validateFonts(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, ok := validLogLevels[config.Logging.Level]; !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must not be negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must not be negative")
	}
	return validationErrors
}

func validateColorScheme(config *Config) []string {
	switch config.Appearance.ColorSchemeOverride {
	case ColorSchemeDefault, ColorSchemePreferDark, ColorSchemePreferLight:
		return nil
	default:
		return []string{fmt.Sprintf("appearance.color_scheme_override is invalid (got %q)", config.Appearance.ColorSchemeOverride)}
	}
}

func validateFonts(config *Config) []string {
	argv, err := shellwords.Parse(config.Fonts.Command)
	if err != nil {
		return []string{fmt.Sprintf("fonts.command is not a valid command line: %v", err)}
	}
	if len(argv) == 0 {
		return []string{"fonts.command must name a binary"}
	}
	return nil
}
