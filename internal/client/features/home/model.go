package home

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/mvi"
)

var ErrNilIntent = errors.New("home: nil intent")

// CurrentUser is satisfied by *usecases.GetCurrentUser.
type CurrentUser interface {
	Execute(ctx context.Context) *models.User
}

// Logouter is satisfied by *usecases.Logout.
type Logouter interface {
	Execute(ctx context.Context) error
}

// Navigator receives the protected announcements request. It is satisfied by
// *navigation.Manager.
type Navigator interface {
	RequestSecureAnnouncementsAccess(ctx context.Context) error
}

type Model struct {
	store       *mvi.Store[State, Intent]
	currentUser CurrentUser
	logout      Logouter
	nav         Navigator
}

func New(currentUser CurrentUser, logout Logouter, nav Navigator, d effect.Dispatcher, logger logging.Logger) *Model {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Model{currentUser: currentUser, logout: logout, nav: nav}
	m.store = mvi.New(Initial(), Reduce, m.process, d, mvi.WithName("home"), mvi.WithLogger(logger))
	return m
}

func (m *Model) process(tx *mvi.Tx[State, Intent], intent Intent) {
	switch in := intent.(type) {
	case ViewAppeared:
		tx.Apply(in)
		tx.Handle(UserLoaded{User: m.currentUser.Execute(tx.Context())})

	case LogoutClicked:
		tx.Apply(in)

		logger := tx.Logger()
		tx.Go(func(ctx context.Context) mvi.Result[Intent] {
			if err := m.logout.Execute(ctx); err != nil {
				logger.Warn(ctx, "logout failed", "error", err)
				return mvi.Then[Intent](LogoutFailed{Err: err}, logoutErrorAlert(usecases.Message(err)))
			}
			return mvi.Then[Intent](LogoutSucceeded{}, logoutSuccessEffects()...)
		})

	case OpenAnnouncements:
		tx.Apply(in)
		if m.nav == nil {
			return
		}
		if err := m.nav.RequestSecureAnnouncementsAccess(tx.Context()); err != nil {
			tx.Logger().Error(tx.Context(), "requesting announcements access", "error", err)
		}

	default:
		tx.Apply(in)
	}
}

func (m *Model) Handle(ctx context.Context, intent Intent) error {
	if intent == nil {
		return ErrNilIntent
	}
	return m.store.Handle(ctx, intent)
}

func (m *Model) State() State {
	return m.store.State()
}

func (m *Model) Subscribe(fn func(State)) (cancel func()) {
	return m.store.Subscribe(fn)
}

func (m *Model) Wait() {
	m.store.Wait()
}

func (m *Model) Close() {
	m.store.Close()
}
