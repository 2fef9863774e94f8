package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "zero log size",
			mutate:  func(c *Config) { c.Logging.MaxSizeMB = 0 },
			wantErr: "logging.max_size_mb",
		},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: "logging.max_backups",
		},
		{
			name:    "negative max age",
			mutate:  func(c *Config) { c.Logging.MaxAge = -2 },
			wantErr: "logging.max_age",
		},
		{
			name:    "unnormalized color scheme",
			mutate:  func(c *Config) { c.Appearance.ColorSchemeOverride = "dark" },
			wantErr: "appearance.color_scheme_override",
		},
		{
			name:   "font command with wrapper",
			mutate: func(c *Config) { c.Fonts.Command = "flatpak-spawn --host fc-list" },
		},
		{
			name:   "quoted font command path with spaces",
			mutate: func(c *Config) { c.Fonts.Command = `"/opt/font tools/fc-list"` },
		},
		{
			name:    "unterminated quote in font command",
			mutate:  func(c *Config) { c.Fonts.Command = `"/opt/font tools/fc-list` },
			wantErr: "fonts.command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ColorSchemeDefault},
		{"default", ColorSchemeDefault},
		{"bogus", ColorSchemeDefault},
		{"dark", ColorSchemePreferDark},
		{" Prefer-Dark ", ColorSchemePreferDark},
		{"light", ColorSchemePreferLight},
		{"prefer-light", ColorSchemePreferLight},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Appearance.ColorSchemeOverride = tt.in
		normalizeConfig(cfg)
		assert.Equal(t, tt.want, cfg.Appearance.ColorSchemeOverride, "input %q", tt.in)
	}

	cfg := DefaultConfig()
	cfg.Fonts.Command = "  "
	cfg.Logging.Format = ""
	normalizeConfig(cfg)
	assert.Equal(t, "fc-list", cfg.Fonts.Command)
	assert.Equal(t, LogFormatConsole, cfg.Logging.Format)
}
