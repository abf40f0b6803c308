package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mvikeeper/internal/client/client"
	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/navigation"
	"github.com/dmitrijs2005/mvikeeper/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItems() []models.Announcement {
	return []models.Announcement{
		{ID: 1, UserID: 1, Title: "系統維護通知", Body: "今晚停機"},
		{ID: 2, UserID: 1, Title: "新功能上線", Body: "公告功能"},
	}
}

func TestApp_StartsOnLoginWithoutSession(t *testing.T) {
	a, out := newTestApp(t, &stubBackend{}, nil)

	a.start(context.Background())
	settle(a)

	assert.Equal(t, screenLogin, a.screen)
	assert.Equal(t, "login", a.status())
	assert.Contains(t, out.String(), "== 登入 ==")
}

func TestApp_RestoresSavedSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Put(ctx, models.User{Account: "alice", Token: "saved"}))
	b := &stubBackend{}
	a, out := newTestApp(t, b, store)

	a.start(ctx)
	settle(a)

	assert.Equal(t, screenHome, a.screen)
	assert.Equal(t, "saved", b.snapshot().token)
	assert.Equal(t, "alice@home", a.status())
	assert.Contains(t, out.String(), "signed in as alice")
}

func TestApp_LoginFlow(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	b := &stubBackend{}
	a, out := newTestApp(t, b, store)
	a.start(ctx)

	require.ErrorIs(t, a.Login(ctx), ErrLoginDisabled)

	require.NoError(t, a.SetAccount(ctx, "alice"))
	require.NoError(t, a.Login(ctx))
	settle(a)

	assert.Equal(t, screenHome, a.screen)
	assert.Nil(t, a.login, "login model is released once home is shown")
	assert.Equal(t, []string{"alice"}, b.snapshot().logins)

	u, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Account)

	text := out.String()
	assert.Contains(t, text, "[toast] 登入成功")
	assert.Contains(t, text, "\a")
	assert.Contains(t, text, "signed in as alice")
}

func TestApp_LoginTruncatesLongAccount(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, &stubBackend{}, nil)
	a.start(ctx)

	require.NoError(t, a.SetAccount(ctx, "abcdefghijklmno"))
	settle(a)

	assert.Equal(t, "abcdefghij", a.login.State().Account)
	assert.Contains(t, out.String(), "[toast]")
}

func TestApp_CommandsCheckScreen(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, &stubBackend{}, nil)
	a.start(ctx)

	assert.ErrorIs(t, a.Logout(ctx), ErrWrongScreen)
	assert.ErrorIs(t, a.OpenAnnouncements(ctx), ErrWrongScreen)
	assert.ErrorIs(t, a.Verify(ctx, "x"), ErrWrongScreen)
	assert.ErrorIs(t, a.Refresh(ctx), ErrWrongScreen)
	assert.ErrorIs(t, a.Back(ctx), ErrWrongScreen)
	assert.ErrorIs(t, a.Cancel(ctx), ErrWrongScreen)
	assert.NoError(t, a.ClearError(ctx))
}

func loggedInApp(t *testing.T, b *stubBackend) (*App, *lockedBuffer) {
	t.Helper()
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Put(ctx, models.User{Account: "alice", Token: "tok-alice"}))
	a, out := newTestApp(t, b, store)
	a.start(ctx)
	settle(a)
	require.Equal(t, screenHome, a.screen)
	return a, out
}

func TestApp_VerificationThenAnnouncements(t *testing.T) {
	ctx := context.Background()
	b := &stubBackend{password: "123456", items: seedItems()}
	a, out := loggedInApp(t, b)

	require.NoError(t, a.OpenAnnouncements(ctx))
	settle(a)
	require.Equal(t, screenVerification, a.screen)
	assert.Equal(t, "verify:announcements", a.status())
	require.NotNil(t, a.security)

	require.NoError(t, a.Verify(ctx, "123456"))
	settle(a)

	assert.Equal(t, screenAnnouncements, a.screen)
	assert.Nil(t, a.security)
	assert.Equal(t, navigation.Announcements(), a.nav.State().Current)
	assert.Equal(t, seedItems(), a.announcements.State().Announcements)

	text := out.String()
	assert.Contains(t, text, "[toast] 驗證成功")
	assert.Contains(t, text, "#1 系統維護通知")

	require.NoError(t, a.Refresh(ctx))
	settle(a)
	assert.Equal(t, seedItems(), a.announcements.State().Announcements)

	require.NoError(t, a.Back(ctx))
	settle(a)
	assert.Equal(t, screenHome, a.screen)
	assert.Equal(t, navigation.Initial(), a.nav.State())
}

func TestApp_VerificationPromptsWhenPasswordOmitted(t *testing.T) {
	ctx := context.Background()
	b := &stubBackend{password: "123456"}
	a, _ := loggedInApp(t, b)
	a.readPassword = func() (string, error) { return "123456", nil }

	require.NoError(t, a.OpenAnnouncements(ctx))
	settle(a)
	require.NoError(t, a.Verify(ctx, ""))
	settle(a)

	assert.Equal(t, []string{"123456"}, b.snapshot().verifies)
	assert.Equal(t, screenAnnouncements, a.screen)
}

func TestApp_TooManyVerificationFailuresReturnHome(t *testing.T) {
	ctx := context.Background()
	b := &stubBackend{password: "123456"}
	a, out := loggedInApp(t, b)

	require.NoError(t, a.OpenAnnouncements(ctx))
	settle(a)

	for i := 0; i < a.cfg.MaxVerificationFailures-1; i++ {
		require.NoError(t, a.Verify(ctx, "wrong"))
		settle(a)
		require.Equal(t, screenVerification, a.screen)
		assert.NotEmpty(t, a.security.State().ErrorMessage)
	}
	assert.Contains(t, out.String(), "1 attempt(s) left")

	require.NoError(t, a.Verify(ctx, "wrong"))
	settle(a)

	assert.Equal(t, screenHome, a.screen)
	assert.Equal(t, navigation.Initial(), a.nav.State())
	assert.Len(t, b.snapshot().verifies, a.cfg.MaxVerificationFailures)
	assert.Contains(t, out.String(), "[alert] 驗證失敗")
}

func TestApp_CancelVerification(t *testing.T) {
	ctx := context.Background()
	a, _ := loggedInApp(t, &stubBackend{})

	require.NoError(t, a.OpenAnnouncements(ctx))
	settle(a)
	require.NoError(t, a.Cancel(ctx))
	settle(a)

	assert.Equal(t, screenHome, a.screen)
	assert.Nil(t, a.security)
}

func TestApp_DirectAnnouncementsSkipVerification(t *testing.T) {
	ctx := context.Background()
	b := &stubBackend{items: seedItems()}
	a, _ := loggedInApp(t, b)

	require.NoError(t, a.OpenAnnouncementsDirect(ctx))
	settle(a)

	assert.Equal(t, screenAnnouncements, a.screen)
	assert.Empty(t, b.snapshot().verifies)
	assert.Len(t, a.announcements.State().Announcements, 2)
}

func TestApp_LogoutReturnsToLogin(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Put(ctx, models.User{Account: "alice", Token: "tok"}))
	b := &stubBackend{}
	a, out := newTestApp(t, b, store)
	a.start(ctx)
	settle(a)

	require.NoError(t, a.Logout(ctx))
	settle(a)

	assert.Equal(t, screenLogin, a.screen)
	require.NotNil(t, a.login)
	assert.Equal(t, "", a.login.State().Account)
	u, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Contains(t, out.String(), "[toast] 登出成功")
}

func TestApp_LogoutWithExpiredSessionReturnsToLogin(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Put(ctx, models.User{Account: "alice", Token: "expired"}))
	b := &stubBackend{logoutErr: client.ErrUnauthorized}
	a, _ := newTestApp(t, b, store)
	a.start(ctx)
	settle(a)
	require.Equal(t, screenHome, a.screen)

	require.NoError(t, a.Logout(ctx))
	settle(a)

	assert.Equal(t, screenLogin, a.screen)
	assert.Equal(t, 1, b.snapshot().logouts)
	u, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, u, "next start must not restore the dead token")
}

func TestApp_LogoutFailureStaysHome(t *testing.T) {
	ctx := context.Background()
	b := &stubBackend{logoutErr: assert.AnError}
	a, out := loggedInApp(t, b)

	require.NoError(t, a.Logout(ctx))
	settle(a)

	assert.Equal(t, screenHome, a.screen)
	assert.NotEmpty(t, a.home.State().ErrorMessage)
	assert.Contains(t, out.String(), "[alert] 登出失敗")

	require.NoError(t, a.ClearError(ctx))
	assert.Empty(t, a.home.State().ErrorMessage)
}

func TestApp_ShowRendersEveryScreen(t *testing.T) {
	ctx := context.Background()
	b := &stubBackend{password: "123456", items: seedItems()}
	a, out := loggedInApp(t, b)

	out.Reset()
	require.NoError(t, a.Show(ctx))
	assert.Contains(t, out.String(), "== 首頁 ==")

	require.NoError(t, a.OpenAnnouncements(ctx))
	settle(a)
	out.Reset()
	require.NoError(t, a.Show(ctx))
	assert.Contains(t, out.String(), "== 安全驗證 ==")
	assert.Contains(t, out.String(), "attempts: 3")
}

func TestApp_RunExitsAndReleasesResources(t *testing.T) {
	b := &stubBackend{}
	closer := &closeCounter{}
	out := &lockedBuffer{}
	a := newApp(deps{
		cfg:     testConfig(),
		backend: b,
		session: session.NewMemoryStore(),
		closer:  closer,
		in:      strings.NewReader("help\nexit\n"),
		out:     out,
	})

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	require.NoError(t, a.Run(context.Background()))

	assert.True(t, b.snapshot().closed)
	assert.Equal(t, 1, closer.n)
}
