package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_FromEnv(t *testing.T) {
	root := isolateXDG(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config", "appearance"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(root, "data", "appearance"), dirs.DataHome)
	assert.Equal(t, filepath.Join(root, "state", "appearance"), dirs.StateHome)

	schema, err := GetSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "appearance", "config.schema.json"), schema)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "state", "appearance", "logs"), logDir)
}

func TestGetXDGDirs_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "appearance"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(home, ".local", "share", "appearance"), dirs.DataHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
	assert.Equal(t, ".dev", filepath.Base(filepath.Dir(dirs.ConfigHome)))
}
