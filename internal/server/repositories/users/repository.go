// Package users stores the accounts that have logged in.
package users

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
)

type Repository interface {
	// Upsert returns the user for account, creating it on first login and
	// bumping LastLoginAt otherwise.
	Upsert(ctx context.Context, account string) (*models.User, error)
	// GetByID returns common.ErrNotFound for unknown ids.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
