package cli

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/mvikeeper/internal/client/config"
	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/session"
	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
)

type stubBackend struct {
	mu       sync.Mutex
	token    string
	logins   []string
	logouts  int
	verifies []string
	closed   bool

	loginErr  error
	logoutErr error
	password  string
	items     []models.Announcement
}

func (b *stubBackend) Login(_ context.Context, account string) (models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logins = append(b.logins, account)
	if b.loginErr != nil {
		return models.User{}, b.loginErr
	}
	b.token = "tok-" + account
	return models.User{Account: account, Token: b.token}, nil
}

func (b *stubBackend) Logout(context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logouts++
	if b.logoutErr != nil {
		return b.logoutErr
	}
	b.token = ""
	return nil
}

func (b *stubBackend) VerifyPassword(_ context.Context, password string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.verifies = append(b.verifies, password)
	return password == b.password, nil
}

func (b *stubBackend) FetchAnnouncements(context.Context) ([]models.Announcement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.token == "" {
		return nil, errors.New("unauthenticated")
	}
	return b.items, nil
}

func (b *stubBackend) SetAccessToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
}

func (b *stubBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

type backendCalls struct {
	token    string
	logins   []string
	logouts  int
	verifies []string
	closed   bool
}

func (b *stubBackend) snapshot() backendCalls {
	b.mu.Lock()
	defer b.mu.Unlock()
	return backendCalls{
		token:    b.token,
		logins:   append([]string(nil), b.logins...),
		logouts:  b.logouts,
		verifies: append([]string(nil), b.verifies...),
		closed:   b.closed,
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

func (l *lockedBuffer) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Reset()
}

type closeCounter struct{ n int }

func (c *closeCounter) Close() error { c.n++; return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

func newTestApp(t *testing.T, b *stubBackend, store usecases.SessionStore) (*App, *lockedBuffer) {
	t.Helper()
	if store == nil {
		store = session.NewMemoryStore()
	}
	out := &lockedBuffer{}
	a := newApp(deps{
		cfg:     testConfig(),
		backend: b,
		session: store,
		out:     out,
	})
	t.Cleanup(a.Close)
	return a, out
}

// settle lets background work finish and handles the events it queued.
func settle(a *App) {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if a.login != nil {
			a.login.Wait()
		}
		if a.security != nil {
			a.security.Wait()
		}
		a.home.Wait()
		a.announcements.Wait()
		a.pump(ctx)
	}
}
