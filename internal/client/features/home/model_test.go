package home

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/navigation"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCurrentUser struct{ user *models.User }

func (s stubCurrentUser) Execute(context.Context) *models.User { return s.user }

type stubLogout struct{ err error }

func (s stubLogout) Execute(context.Context) error { return s.err }

func TestModel_ViewAppearedLoadsUser(t *testing.T) {
	alice := &models.User{Account: "alice", Token: "t"}
	m := New(stubCurrentUser{user: alice}, stubLogout{}, nil, nil, nil)
	t.Cleanup(m.Close)

	var states []State
	m.Subscribe(func(s State) { states = append(states, s) })

	require.NoError(t, m.Handle(context.Background(), ViewAppeared{}))

	require.Len(t, states, 2)
	assert.True(t, states[1].Equal(State{User: alice}))
}

func TestModel_LogoutSuccess(t *testing.T) {
	ctx := context.Background()
	rec := effect.NewRecorder()
	m := New(stubCurrentUser{user: &models.User{Account: "alice"}}, stubLogout{}, nil, rec, nil)
	t.Cleanup(m.Close)

	require.NoError(t, m.Handle(ctx, ViewAppeared{}))
	require.NoError(t, m.Handle(ctx, LogoutClicked{}))
	m.Wait()

	assert.True(t, m.State().Equal(State{}))
	assert.Equal(t, []effect.Effect{
		effect.Toast{Message: "登出成功", Duration: 2 * time.Second},
		effect.Navigate{Route: effect.RouteLogin},
	}, rec.Effects())
}

func TestModel_LogoutFailureKeepsUser(t *testing.T) {
	ctx := context.Background()
	rec := effect.NewRecorder()
	alice := &models.User{Account: "alice"}
	m := New(stubCurrentUser{user: alice}, stubLogout{err: errors.New("伺服器無回應")}, nil, rec, nil)
	t.Cleanup(m.Close)

	require.NoError(t, m.Handle(ctx, ViewAppeared{}))
	require.NoError(t, m.Handle(ctx, LogoutClicked{}))
	m.Wait()

	assert.True(t, m.State().Equal(State{User: alice, ErrorMessage: "伺服器無回應"}))
	assert.Equal(t, []effect.Effect{
		effect.Alert{Title: "登出失敗", Message: "伺服器無回應", Actions: effect.OK()},
	}, rec.Effects())
}

func TestModel_OpenAnnouncementsRequestsSecureAccess(t *testing.T) {
	nav := navigation.NewManager(nil, nil)
	t.Cleanup(nav.Close)

	m := New(stubCurrentUser{}, stubLogout{}, nav, nil, nil)
	t.Cleanup(m.Close)

	require.NoError(t, m.Handle(context.Background(), OpenAnnouncements{}))

	v := nav.State()
	assert.True(t, v.ShouldShowSecurityVerification())
	require.NotNil(t, v.PendingDestination)
	assert.Equal(t, navigation.DestinationAnnouncements, *v.PendingDestination)
}
