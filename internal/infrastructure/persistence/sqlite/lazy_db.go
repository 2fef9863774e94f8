package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/appearance/internal/logging"
)

// LazyDB opens the database on first access. CLI commands that never
// touch preferences (font listing, config schema) skip the WASM
// compilation and migration cost entirely.
type LazyDB struct {
	dbPath string
	once   sync.Once

	mu  sync.RWMutex
	db  *sql.DB
	err error
}

// NewLazyDB creates a new lazy database provider.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, initializing it if necessary.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("lazy database initialization starting")

		db, err := NewConnection(ctx, l.dbPath)

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("lazy database initialization failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database connection if it was initialized.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// IsInitialized returns true if the database has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyPreferenceStore defers opening the database until the first
// preference access.
type LazyPreferenceStore struct {
	provider *LazyDB
}

// NewLazyPreferenceStore creates a preference store backed by a lazy database.
func NewLazyPreferenceStore(provider *LazyDB) *LazyPreferenceStore {
	return &LazyPreferenceStore{provider: provider}
}

func (s *LazyPreferenceStore) store(ctx context.Context) (*preferenceStore, error) {
	db, err := s.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	return &preferenceStore{db: db}, nil
}

// Get implements port.PreferenceStore.
func (s *LazyPreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	store, err := s.store(ctx)
	if err != nil {
		return "", false, err
	}
	return store.Get(ctx, key)
}

// Set implements port.PreferenceStore.
func (s *LazyPreferenceStore) Set(ctx context.Context, key, value string) error {
	store, err := s.store(ctx)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, value)
}

// Remove implements port.PreferenceStore.
func (s *LazyPreferenceStore) Remove(ctx context.Context, key string) error {
	store, err := s.store(ctx)
	if err != nil {
		return err
	}
	return store.Remove(ctx, key)
}
