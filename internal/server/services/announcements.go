package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/repomanager"
)

type AnnouncementService struct {
	repos repomanager.RepositoryManager
}

func NewAnnouncementService(m repomanager.RepositoryManager) *AnnouncementService {
	return &AnnouncementService{repos: m}
}

func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.repos.Announcements().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}
