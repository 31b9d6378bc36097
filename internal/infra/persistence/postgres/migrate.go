package postgres

import (
	"context"
	"database/sql"

	"markd/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// runMigrations applies the embedded goose migrations on startup. The schema
// (unique email, bookmark ownership FK) is what the services rely on for
// conflict and ownership semantics, so the process refuses to start without it.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
