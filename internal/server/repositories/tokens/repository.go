// Package tokens tracks issued session tokens so that logout can revoke them
// before they expire.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token models.Token) error

	// Find returns common.ErrNotFound for unknown ids.
	Find(ctx context.Context, id string) (*models.Token, error)

	// Revoke marks the token revoked. Revoking twice keeps the first
	// revocation time; an unknown id yields common.ErrNotFound.
	Revoke(ctx context.Context, id string) error
}
