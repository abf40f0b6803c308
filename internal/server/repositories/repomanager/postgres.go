package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/dbx"
	"github.com/dmitrijs2005/mvikeeper/internal/server/migrations"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories bound to
// either the pool or a running transaction.
type PostgresRepositoryManager struct {
	db   *sql.DB
	conn dbx.DBTX
}

var _ RepositoryManager = (*PostgresRepositoryManager)(nil)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// OpenPostgres connects to dsn with the pgx driver.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := dbx.Open(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	return NewPostgresRepositoryManager(db), nil
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db, conn: db}
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.conn)
}

func (m *PostgresRepositoryManager) Tokens() tokens.Repository {
	return tokens.NewPostgresRepository(m.conn)
}

func (m *PostgresRepositoryManager) Announcements() announcements.Repository {
	return announcements.NewPostgresRepository(m.conn)
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &PostgresRepositoryManager{db: m.db, conn: tx})
	})
}

// RunMigrations applies the embedded schema.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
