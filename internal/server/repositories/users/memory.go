package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu        sync.Mutex
	byAccount map[string]*models.User
	byID      map[string]*models.User
	now       func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byAccount: make(map[string]*models.User),
		byID:      make(map[string]*models.User),
		now:       time.Now,
	}
}

func (r *MemoryRepository) Upsert(_ context.Context, account string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if u, ok := r.byAccount[account]; ok {
		u.LastLoginAt = now
		cp := *u
		return &cp, nil
	}

	u := &models.User{ID: uuid.NewString(), Account: account, CreatedAt: now, LastLoginAt: now}
	r.byAccount[account] = u
	r.byID[u.ID] = u

	cp := *u
	return &cp, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}
