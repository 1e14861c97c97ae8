// Package store opens the local sqlite database backing the system and
// applies pending schema migrations.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/store/migrations"
)

// Open opens (creating if needed) the sqlite database at the given DSN and
// runs pending migrations. The pool is capped at a single connection so that
// conflicting writers inside one process serialize; writers from other
// processes sharing the file are serialized by sqlite's own locking.
//
// Disk or permission failures surface here as errors; no reconnection is
// attempted.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}
