// Package config loads, validates, watches and writes the appearance
// configuration file.
package config

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// Color scheme override values accepted in appearance.color_scheme_override.
const (
	ColorSchemeDefault     = "default"
	ColorSchemePreferDark  = "prefer-dark"
	ColorSchemePreferLight = "prefer-light"
	ColorSchemeDark        = "dark"
	ColorSchemeLight       = "light"
)

// Logging formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config represents the complete configuration.
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database" toml:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance"`
	Fonts      FontsConfig      `mapstructure:"fonts" toml:"fonts"`
}

// DatabaseConfig holds the preference store location.
type DatabaseConfig struct {
	// Path to the sqlite file. Empty means $XDG_DATA_HOME/appearance/appearance.sqlite.
	Path string `mapstructure:"path" toml:"path" jsonschema:"description=Path to the preferences database"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`

	// EnableFileLog also writes JSON logs to LogDir, rotated by size.
	EnableFileLog bool `mapstructure:"enable_file_log" toml:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/appearance/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	MaxAge     int    `mapstructure:"max_age" toml:"max_age" jsonschema:"minimum=0,description=Days to keep rotated logs"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

// AppearanceConfig controls how the OS color scheme is resolved.
type AppearanceConfig struct {
	// ColorSchemeOverride forces the OS preference seen by the "system" theme.
	// "default" follows the detectors.
	ColorSchemeOverride string `mapstructure:"color_scheme_override" toml:"color_scheme_override" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light,enum=dark,enum=light"`

	// FallbackDark is used when no detector can tell.
	FallbackDark bool `mapstructure:"fallback_dark" toml:"fallback_dark"`
}

// FontsConfig controls font enumeration.
type FontsConfig struct {
	// Command is the fc-list binary, by name or absolute path.
	Command string `mapstructure:"command" toml:"command" jsonschema:"description=fontconfig list command"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     LogFormatConsole,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAgeDays,
			Compress:   true,
		},
		Appearance: AppearanceConfig{
			ColorSchemeOverride: ColorSchemeDefault,
			FallbackDark:        true,
		},
		Fonts: FontsConfig{
			Command: "fc-list",
		},
	}
}
