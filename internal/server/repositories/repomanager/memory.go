package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory. WithTx
// serializes units of work but cannot undo partial writes.
type InMemoryRepositoryManager struct {
	txMu          *sync.Mutex
	users         *users.MemoryRepository
	tokens        *tokens.MemoryRepository
	announcements *announcements.MemoryRepository
}

var _ RepositoryManager = (*InMemoryRepositoryManager)(nil)

// NewInMemoryRepositoryManager seeds the announcement store with items.
func NewInMemoryRepositoryManager(items ...models.Announcement) *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		txMu:          &sync.Mutex{},
		users:         users.NewMemoryRepository(),
		tokens:        tokens.NewMemoryRepository(),
		announcements: announcements.NewMemoryRepository(items...),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) Tokens() tokens.Repository { return m.tokens }

func (m *InMemoryRepositoryManager) Announcements() announcements.Repository {
	return m.announcements
}

func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m)
}

func (m *InMemoryRepositoryManager) Close() error { return nil }
