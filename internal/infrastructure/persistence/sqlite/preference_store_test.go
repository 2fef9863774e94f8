package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/appearance/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestStore(t *testing.T) port.PreferenceStore {
	t.Helper()
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "appearance.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlite.NewPreferenceStore(db)
}

func TestPreferenceStore_GetMissingKey(t *testing.T) {
	ctx := testCtx()
	store := newTestStore(t)

	value, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestPreferenceStore_SetThenGet(t *testing.T) {
	ctx := testCtx()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "font-face", `"Fira Sans", sans-serif`))

	value, ok, err := store.Get(ctx, "font-face")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"Fira Sans", sans-serif`, value)
}

func TestPreferenceStore_SetOverwrites(t *testing.T) {
	ctx := testCtx()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "theme", "light"))
	require.NoError(t, store.Set(ctx, "theme", "dark"))

	value, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestPreferenceStore_EmptyValueIsPresent(t *testing.T) {
	ctx := testCtx()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "font-face", ""))

	value, ok, err := store.Get(ctx, "font-face")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestPreferenceStore_Remove(t *testing.T) {
	ctx := testCtx()
	store := newTestStore(t)

	require.NoError(t, store.Set(ctx, "autoSwitchTheme", "1"))
	require.NoError(t, store.Remove(ctx, "autoSwitchTheme"))

	_, ok, err := store.Get(ctx, "autoSwitchTheme")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing again is not an error
	require.NoError(t, store.Remove(ctx, "autoSwitchTheme"))
}

func TestPreferenceStore_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "appearance.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewPreferenceStore(db).Set(ctx, "theme", "dark"))
	require.NoError(t, db.Close())

	reopened, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, ok, err := sqlite.NewPreferenceStore(reopened).Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	version, err := sqlite.GetMigrationStatus(ctx, reopened)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}
