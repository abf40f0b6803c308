package grpc

import (
	"context"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
	"github.com/dmitrijs2005/mvikeeper/internal/server/models"
	"github.com/dmitrijs2005/mvikeeper/internal/server/services"
)

type fakeSessions struct {
	loginOut *services.Session
	loginErr error

	principals map[string]*services.Principal

	logoutErr    error
	loggedOutIDs []string
}

func (f *fakeSessions) Login(_ context.Context, account string) (*services.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginOut, nil
}

func (f *fakeSessions) Authenticate(_ context.Context, token string) (*services.Principal, error) {
	p, ok := f.principals[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return p, nil
}

func (f *fakeSessions) Logout(_ context.Context, tokenID string) error {
	f.loggedOutIDs = append(f.loggedOutIDs, tokenID)
	return f.logoutErr
}

type fakeVerifier struct{ password string }

func (f fakeVerifier) Verify(_ context.Context, password string) bool { return password == f.password }

type fakeAnnouncements struct {
	items []models.Announcement
	err   error
}

func (f fakeAnnouncements) List(context.Context) ([]models.Announcement, error) { return f.items, f.err }
