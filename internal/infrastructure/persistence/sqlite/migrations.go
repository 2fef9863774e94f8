package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/appearance/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// newMigrationProvider builds a goose provider over the embedded preference
// schema. The provider owns no resources of its own; db stays with the caller.
func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, nil
}

// RunMigrations brings the preferences schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx).With().Str("schema", "preferences").Logger()

	provider, err := newMigrationProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	for _, res := range results {
		if res.Source == nil {
			continue
		}
		log.Debug().
			Int64("version", res.Source.Version).
			Str("file", res.Source.Path).
			Dur("took", res.Duration).
			Msg("migration applied")
	}
	if err != nil {
		return fmt.Errorf("migrate preferences schema: %w", err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read preferences schema version: %w", err)
	}
	if len(results) > 0 {
		log.Info().Int("applied", len(results)).Int64("version", version).Msg("preferences schema migrated")
	} else {
		log.Debug().Int64("version", version).Msg("preferences schema up to date")
	}
	return nil
}

// GetMigrationStatus returns the applied schema version.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

// HasPendingMigrations reports whether the embedded schema is ahead of db.
func HasPendingMigrations(ctx context.Context, db *sql.DB) (bool, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return false, err
	}
	return provider.HasPending(ctx)
}
