package logging

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRotator(t *testing.T, cfg RotatorConfig) *LogRotator {
	t.Helper()
	if cfg.Dir == "" {
		cfg.Dir = filepath.Join(t.TempDir(), "logs")
	}
	r, err := NewLogRotator(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	r.maxSize = 16
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	r.warn = func(err error) { t.Errorf("unexpected rotator warning: %v", err) }
	return r
}

func backups(t *testing.T, dir, base string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), base+".") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestLogRotator_CreatesDirAndDefaultName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	r := newTestRotator(t, RotatorConfig{Dir: dir})

	_, err := r.Write([]byte("hello\n"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "appearance.log"), r.Path())
	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestLogRotator_RotatesBySize(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{FileName: "test.log"})

	for _, line := range []string{"0123456789\n", "abcdefghij\n", "klmnopqrst\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	names := backups(t, r.baseDir, "test.log")
	assert.Len(t, names, 2)

	current, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "klmnopqrst\n", string(current))
}

func TestLogRotator_OversizedWriteGoesToEmptyFile(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{FileName: "big.log"})

	payload := strings.Repeat("x", 64)
	_, err := r.Write([]byte(payload))
	require.NoError(t, err)

	assert.Empty(t, backups(t, r.baseDir, "big.log"))
	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestLogRotator_KeepsMaxBackups(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{FileName: "keep.log", MaxBackups: 2})

	for i := 0; i < 6; i++ {
		_, err := r.Write([]byte("0123456789abcd\n"))
		require.NoError(t, err)
	}

	assert.Len(t, backups(t, r.baseDir, "keep.log"), 2)
}

func TestLogRotator_CompressesBackups(t *testing.T) {
	r := newTestRotator(t, RotatorConfig{FileName: "gz.log", Compress: true})

	_, err := r.Write([]byte("first line....\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("second line...\n"))
	require.NoError(t, err)

	names := backups(t, r.baseDir, "gz.log")
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], ".gz"), names[0])

	f, err := os.Open(filepath.Join(r.baseDir, names[0]))
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "first line....\n", string(data))
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &stderr

	logger, cleanup, err := NewWithFile(cfg, FileConfig{
		Enabled:       true,
		WriteToStderr: true,
		Rotator:       RotatorConfig{Dir: dir, MaxSizeMB: 1},
	})
	require.NoError(t, err)

	logger.Info().Str("theme", "dark").Msg("theme persisted")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "appearance.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme":"dark"`)
	assert.Contains(t, stderr.String(), `"theme persisted"`)
}

func TestNewWithFile_Disabled(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &out

	logger, cleanup, err := NewWithFile(cfg, FileConfig{})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()

	logger.Info().Msg("ok")
	assert.Contains(t, out.String(), `"ok"`)
}
