package security

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mvikeeper/internal/client/navigation"
	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/mvi"
)

var ErrNilIntent = errors.New("security: nil intent")

// Verifier is satisfied by *usecases.VerifyPassword.
type Verifier interface {
	Execute(ctx context.Context, password string) error
}

// Navigator is satisfied by *navigation.Manager.
type Navigator interface {
	SecurityVerificationSucceeded(ctx context.Context, d navigation.Destination) error
}

type Model struct {
	store  *mvi.Store[State, Intent]
	verify Verifier
	nav    Navigator
}

func New(verify Verifier, nav Navigator, d effect.Dispatcher, logger logging.Logger) *Model {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Model{verify: verify, nav: nav}
	m.store = mvi.New(Initial(), Reduce, m.process, d, mvi.WithName("security"), mvi.WithLogger(logger))
	return m
}

func (m *Model) process(tx *mvi.Tx[State, Intent], intent Intent) {
	switch in := intent.(type) {
	case VerifyPassword:
		tx.Apply(in)

		logger := tx.Logger()
		tx.Go(func(ctx context.Context) mvi.Result[Intent] {
			if err := m.verify.Execute(ctx, in.Password); err != nil {
				logger.Warn(ctx, "password verification failed", "destination", in.Destination.String(), "error", err)
				return mvi.Then[Intent](VerificationFailed{Err: err}, errorAlert(usecases.Message(err)))
			}
			return mvi.Then[Intent](VerificationSucceeded{Destination: in.Destination}, successEffects()...)
		})

	case VerificationSucceeded:
		tx.Apply(in)
		if m.nav == nil {
			return
		}
		if err := m.nav.SecurityVerificationSucceeded(tx.Context(), in.Destination); err != nil {
			tx.Logger().Error(tx.Context(), "forwarding verification success", "error", err)
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
