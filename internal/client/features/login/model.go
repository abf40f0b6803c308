package login

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/mvi"
)

var ErrNilIntent = errors.New("login: nil intent")

// Authenticator is satisfied by *usecases.Login.
type Authenticator interface {
	Execute(ctx context.Context, account string) (models.User, error)
}

// AccountValidator is satisfied by *usecases.ValidateAccount.
type AccountValidator interface {
	Validate(text string) usecases.AccountValidation
}

// Model serializes login intents.
type Model struct {
	store     *mvi.Store[State, Intent]
	login     Authenticator
	validator AccountValidator
}

func New(login Authenticator, validator AccountValidator, d effect.Dispatcher, logger logging.Logger) *Model {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Model{login: login, validator: validator}
	m.store = mvi.New(Initial(), Reduce, m.process, d, mvi.WithName("login"), mvi.WithLogger(logger))
	return m
}

func (m *Model) process(tx *mvi.Tx[State, Intent], intent Intent) {
	switch in := intent.(type) {
	case AccountChanged:
		v := m.validator.Validate(in.Text)
		tx.Apply(AccountChanged{Text: v.Account})
		if v.Valid {
			return
		}
		tx.Handle(AccountValidationFailed{Message: v.Message})
		tx.Dispatch(validationToast(v.Message))

	case LoginClicked:
		account := tx.State().Account
		if account == "" {
			return
		}
		tx.Apply(in)

		logger := tx.Logger()
		tx.Go(func(ctx context.Context) mvi.Result[Intent] {
			u, err := m.login.Execute(ctx, account)
			if err != nil {
				logger.Warn(ctx, "login failed", "account", account, "error", err)
				return mvi.Then[Intent](LoginFailed{Err: err}, errorAlert(usecases.Message(err)))
			}
			logger.Info(ctx, "logged in", "account", u.Account)
			return mvi.Then[Intent](LoginSucceeded{User: u}, successEffects()...)
		})

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

// Wait blocks until the running login request, if any, has been reduced.
func (m *Model) Wait() {
	m.store.Wait()
}

func (m *Model) Close() {
	m.store.Close()
}
