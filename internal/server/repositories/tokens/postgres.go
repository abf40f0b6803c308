package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/dmitrijs2005/mvikeeper/internal/dbx"
	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
)

// PostgresRepository works over dbx.DBTX, so it runs inside or outside a
// transaction alike.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token models.Token) error {
	query := `
		INSERT INTO session_tokens (id, user_id, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, token.ID, token.UserID, token.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.Token, error) {
	query := `
		SELECT id, user_id, expires_at, revoked_at
		FROM session_tokens
		WHERE id = $1
	`
	token := &models.Token{}
	var revokedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&token.ID, &token.UserID, &token.ExpiresAt, &revokedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}
	return token, nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, id string) error {
	query := `
		UPDATE session_tokens
		SET revoked_at = COALESCE(revoked_at, now())
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
