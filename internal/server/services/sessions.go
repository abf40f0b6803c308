// Package services contains the server-side business logic behind the
// KeeperService RPCs.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/dmitrijs2005/mvikeeper/internal/server/auth"
	"github.com/dmitrijs2005/mvikeeper/internal/server/config"
	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
	"github.com/dmitrijs2005/mvikeeper/internal/server/repositories/repomanager"
)

// Session is what a successful login hands back to the caller.
type Session struct {
	UserID  string
	Account string
	Token   string
	TokenID string
}

// Principal identifies the caller of an authenticated RPC.
type Principal struct {
	UserID  string
	Account string
	TokenID string
}

// SessionService issues, checks and revokes session tokens.
type SessionService struct {
	repos         repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewSessionService(m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		repos:         m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		now:           time.Now,
	}
}

// Login records the account and issues a token for it. Any non-empty
// account is accepted.
func (s *SessionService) Login(ctx context.Context, account string) (*Session, error) {
	if account == "" {
		return nil, common.ErrEmptyAccount
	}

	var session *Session
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		user, err := tx.Users().Upsert(ctx, account)
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		token, tokenID, err := auth.GenerateToken(user.ID, user.Account, s.jwtSecret, s.tokenValidity)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}

		record := models.Token{ID: tokenID, UserID: user.ID, ExpiresAt: s.now().Add(s.tokenValidity)}
		if err := tx.Tokens().Create(ctx, record); err != nil {
			return fmt.Errorf("store token: %w", err)
		}

		session = &Session{UserID: user.ID, Account: user.Account, Token: token, TokenID: tokenID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Authenticate accepts a signed, unexpired token that has not been revoked.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	record, err := s.repos.Tokens().Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}

	switch {
	case record.RevokedAt != nil:
		return nil, common.ErrTokenRevoked
	case !record.Active(s.now()):
		return nil, common.ErrTokenExpired
	}

	return &Principal{UserID: claims.Subject, Account: claims.Account, TokenID: claims.ID}, nil
}

// Logout revokes the token with tokenID.
func (s *SessionService) Logout(ctx context.Context, tokenID string) error {
	if err := s.repos.Tokens().Revoke(ctx, tokenID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidToken
		}
		return err
	}
	return nil
}
