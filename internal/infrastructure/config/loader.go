package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/bnema/appearance/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. APPEARANCE_FONTS_COMMAND.
const EnvPrefix = "APPEARANCE"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Most variables map automatically (APPEARANCE_DATABASE_PATH,
	// APPEARANCE_APPEARANCE_FALLBACK_DARK); the log ones use shorter names.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	m := &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}
	m.setDefaults()
	return m, nil
}

// Load reads the config file, creating it with defaults when missing.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.readConfigFile(ctx); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile(ctx context.Context) error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(ctx); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// unmarshalConfig decodes, fills, normalizes and validates the viper state.
func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	if err := ensureLogDir(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		expanded, err := homedir.Expand(config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to expand database path: %w", err)
		}
		config.Database.Path = expanded
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func ensureLogDir(config *Config) error {
	if config.Logging.LogDir != "" {
		expanded, err := homedir.Expand(config.Logging.LogDir)
		if err != nil {
			return fmt.Errorf("failed to expand log directory: %w", err)
		}
		config.Logging.LogDir = expanded
		return nil
	}
	logDir, err := GetLogDir()
	if err != nil {
		return fmt.Errorf("failed to get log directory: %w", err)
	}
	config.Logging.LogDir = logDir
	return nil
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Appearance.ColorSchemeOverride)) {
	case ColorSchemePreferDark, ColorSchemeDark:
		config.Appearance.ColorSchemeOverride = ColorSchemePreferDark
	case ColorSchemePreferLight, ColorSchemeLight:
		config.Appearance.ColorSchemeOverride = ColorSchemePreferLight
	default:
		config.Appearance.ColorSchemeOverride = ColorSchemeDefault
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = LogFormatConsole
	}

	config.Fonts.Command = strings.TrimSpace(config.Fonts.Command)
	if config.Fonts.Command == "" {
		config.Fonts.Command = DefaultConfig().Fonts.Command
	}
}

// Get returns a copy of the current configuration.
// Before Load it returns the defaults.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}

	logging.FromContext(ctx).Info().Str("path", m.configFile).Msg("created default configuration file")
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
	m.viper.SetDefault("appearance.color_scheme_override", defaults.Appearance.ColorSchemeOverride)
	m.viper.SetDefault("appearance.fallback_dark", defaults.Appearance.FallbackDark)
	m.viper.SetDefault("fonts.command", defaults.Fonts.Command)
}
