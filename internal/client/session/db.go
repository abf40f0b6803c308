// Package session persists the logged-in user on the client so the next
// start can skip the login screen.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/client/migrations"
	"github.com/dmitrijs2005/mvikeeper/internal/dbx"
	"github.com/dmitrijs2005/mvikeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded sqlite migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate session db: %w", err)
	}
	return nil
}

// OpenDatabase opens the sqlite file at dsn and migrates it. A single
// connection is kept so ":memory:" databases behave like files.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	dsn, err := filex.EnsureParentDir(dsn)
	if err != nil {
		return nil, fmt.Errorf("prepare session db: %w", err)
	}

	db, err := dbx.Open(ctx, "sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
