// Package repomanager hands out the server repositories and runs units of
// work across them.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Tokens() tokens.Repository
	Announcements() announcements.Repository
	// WithTx runs fn with a manager whose repositories share one
	// transaction. Returning an error discards the work where the backend
	// supports it.
	WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error
	Close() error
}
