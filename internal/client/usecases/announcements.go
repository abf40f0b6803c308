package usecases

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
)

// FetchAnnouncements loads the full announcement list. There is no paging.
type FetchAnnouncements struct {
	content ContentBackend
}

func NewFetchAnnouncements(content ContentBackend) *FetchAnnouncements {
	return &FetchAnnouncements{content: content}
}

func (f *FetchAnnouncements) Execute(ctx context.Context) ([]models.Announcement, error) {
	items, err := f.content.FetchAnnouncements(ctx)
	if err != nil {
		return nil, backendError(err)
	}
	return items, nil
}
