package client

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, account string) (models.User, error)
	Logout(ctx context.Context) error
	VerifyPassword(ctx context.Context, password string) (bool, error)
	FetchAnnouncements(ctx context.Context) ([]models.Announcement, error)
	// SetAccessToken restores a token saved by a previous run.
	SetAccessToken(token string)
	Close() error
}
