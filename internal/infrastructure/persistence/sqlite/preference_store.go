package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/logging"
)

const (
	getPreferenceQuery = `SELECT value FROM preferences WHERE key = ?`
	setPreferenceQuery = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	removePreferenceQuery = `DELETE FROM preferences WHERE key = ?`
)

type preferenceStore struct {
	db *sql.DB
}

// NewPreferenceStore creates a SQLite-backed preference store.
func NewPreferenceStore(db *sql.DB) port.PreferenceStore {
	return &preferenceStore{db: db}
}

func (s *preferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getPreferenceQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

func (s *preferenceStore) Set(ctx context.Context, key, value string) error {
	log := logging.FromContext(logging.WithKey(ctx, key))
	log.Debug().Msg("setting preference")

	if _, err := s.db.ExecContext(ctx, setPreferenceQuery, key, value); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (s *preferenceStore) Remove(ctx context.Context, key string) error {
	logging.FromContext(logging.WithKey(ctx, key)).Debug().Msg("removing preference")
	if _, err := s.db.ExecContext(ctx, removePreferenceQuery, key); err != nil {
		return fmt.Errorf("remove preference %q: %w", key, err)
	}
	return nil
}
