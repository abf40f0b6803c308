package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
)

// Login authenticates an account and remembers the resulting session.
type Login struct {
	auth    AuthBackend
	session SessionStore
}

func NewLogin(auth AuthBackend, session SessionStore) *Login {
	return &Login{auth: auth, session: session}
}

// Execute returns ErrEmptyAccount for an empty account without calling the
// backend. The user is persisted before Execute returns.
func (l *Login) Execute(ctx context.Context, account string) (models.User, error) {
	if account == "" {
		return models.User{}, ErrEmptyAccount
	}

	u, err := l.auth.Login(ctx, account)
	if err != nil {
		return models.User{}, backendError(err)
	}

	if err := l.session.Put(ctx, u); err != nil {
		return models.User{}, &Error{Kind: KindStorage, Message: fmt.Sprintf("無法儲存登入狀態: %v", err), Err: err}
	}

	return u, nil
}

// Logout ends the server session. The local session is cleared when the
// backend call succeeds or reports that the session is already gone
// (common.ErrUnauthorized); any other failure keeps it.
type Logout struct {
	auth    AuthBackend
	session SessionStore
}

func NewLogout(auth AuthBackend, session SessionStore) *Logout {
	return &Logout{auth: auth, session: session}
}

func (l *Logout) Execute(ctx context.Context) error {
	if err := l.auth.Logout(ctx); err != nil && !errors.Is(err, common.ErrUnauthorized) {
		return backendError(err)
	}
	if err := l.session.Clear(ctx); err != nil {
		return &Error{Kind: KindStorage, Message: fmt.Sprintf("無法清除登入狀態: %v", err), Err: err}
	}
	return nil
}

// GetCurrentUser reads the persisted session.
type GetCurrentUser struct {
	session SessionStore
	logger  logging.Logger
}

func NewGetCurrentUser(session SessionStore, logger logging.Logger) *GetCurrentUser {
	if logger == nil {
		logger = logging.Nop()
	}
	return &GetCurrentUser{session: session, logger: logger}
}

// Execute returns nil when nobody is logged in or the session cannot be read.
func (g *GetCurrentUser) Execute(ctx context.Context) *models.User {
	u, err := g.session.Get(ctx)
	if err != nil {
		g.logger.Warn(ctx, "reading session failed", "error", err)
		return nil
	}
	return u
}
