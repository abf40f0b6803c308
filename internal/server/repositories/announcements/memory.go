package announcements

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items []models.Announcement
}

func NewMemoryRepository(items ...models.Announcement) *MemoryRepository {
	items = slices.Clone(items)
	slices.SortFunc(items, func(a, b models.Announcement) int { return a.ID - b.ID })
	return &MemoryRepository{items: items}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}
