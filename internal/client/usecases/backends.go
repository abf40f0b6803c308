package usecases

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
)

// AuthBackend authenticates accounts against the server.
type AuthBackend interface {
	Login(ctx context.Context, account string) (models.User, error)
	Logout(ctx context.Context) error
}

// PasswordBackend checks the secondary password guarding protected screens.
type PasswordBackend interface {
	VerifyPassword(ctx context.Context, password string) (bool, error)
}

// ContentBackend serves announcements.
type ContentBackend interface {
	FetchAnnouncements(ctx context.Context) ([]models.Announcement, error)
}

// SessionStore persists the current user. Implementations must make Put and
// Clear atomic with respect to Get.
type SessionStore interface {
	Get(ctx context.Context) (*models.User, error)
	Put(ctx context.Context, u models.User) error
	Clear(ctx context.Context) error
}
