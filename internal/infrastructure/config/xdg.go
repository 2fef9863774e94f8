package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "appearance"
	databaseName = "appearance.sqlite"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths:
// - $XDG_CONFIG_HOME/appearance (default: ~/.config/appearance)
// - $XDG_DATA_HOME/appearance (default: ~/.local/share/appearance)
// - $XDG_STATE_HOME/appearance (default: ~/.local/state/appearance)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode keeps everything under ./.dev
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")),
		DataHome:   xdgDir("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")),
		StateHome:  xdgDir("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state")),
	}, nil
}

func xdgDir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		base = fallback
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetSchemaFile returns the path of the generated JSON schema.
func GetSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.schema.json"), nil
}

// GetDatabaseFile returns the path to the preferences database.
// User preferences belong in XDG_DATA_HOME, not XDG_STATE_HOME.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetLogDir returns the directory for rotated log files.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}
