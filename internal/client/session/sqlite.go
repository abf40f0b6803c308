package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/mvikeeper/internal/dbx"
)

// CurrentUserKey is the metadata key holding the JSON encoded user.
const CurrentUserKey = "current_user"

// SQLiteStore keeps the session in the metadata table.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get returns nil when no user is stored.
func (s *SQLiteStore) Get(ctx context.Context) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &u, nil
}

func (s *SQLiteStore) Put(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Set(ctx, CurrentUserKey, raw)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, CurrentUserKey)
	})
}
