package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
)

// MemoryStore is a process-local session, used when no database path is
// configured.
type MemoryStore struct {
	mu   sync.RWMutex
	user *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(context.Context) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) Put(_ context.Context, u models.User) error {
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}
