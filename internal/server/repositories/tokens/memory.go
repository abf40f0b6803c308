package tokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]models.Token
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]models.Token), now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, token models.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.ID] = token
	return nil
}

func (r *MemoryRepository) Find(_ context.Context, id string) (*models.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Revoke(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id]
	if !ok {
		return common.ErrNotFound
	}
	if t.RevokedAt == nil {
		now := r.now()
		t.RevokedAt = &now
		r.tokens[id] = t
	}
	return nil
}
