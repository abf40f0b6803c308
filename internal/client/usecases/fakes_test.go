package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
)

type fakeAuth struct {
	LoginRet  models.User
	LoginErr  error
	LogoutErr error

	loginCalls  int
	logoutCalls int
}

func (f *fakeAuth) Login(_ context.Context, account string) (models.User, error) {
	f.loginCalls++
	if f.LoginErr != nil {
		return models.User{}, f.LoginErr
	}
	u := f.LoginRet
	if u.Account == "" {
		u.Account = account
	}
	return u, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalls++
	return f.LogoutErr
}

type fakeSession struct {
	mu       sync.Mutex
	user     *models.User
	GetErr   error
	PutErr   error
	ClearErr error
}

func (f *fakeSession) Get(context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	if f.user == nil {
		return nil, nil
	}
	u := *f.user
	return &u, nil
}

func (f *fakeSession) Put(_ context.Context, u models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PutErr != nil {
		return f.PutErr
	}
	f.user = &u
	return nil
}

func (f *fakeSession) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.user = nil
	return nil
}

type fakeContent struct {
	Items []models.Announcement
	Err   error
}

func (f fakeContent) FetchAnnouncements(context.Context) ([]models.Announcement, error) {
	return f.Items, f.Err
}

type fakePassword struct {
	OK  bool
	Err error
}

func (f fakePassword) VerifyPassword(context.Context, string) (bool, error) {
	return f.OK, f.Err
}

func isKind(err error, k Kind) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == k
}
