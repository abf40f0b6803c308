package announcements

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/mvi"
)

var ErrNilIntent = errors.New("announcements: nil intent")

// Fetcher is satisfied by *usecases.FetchAnnouncements.
type Fetcher interface {
	Execute(ctx context.Context) ([]models.Announcement, error)
}

type Model struct {
	store *mvi.Store[State, Intent]
	fetch Fetcher
}

func New(fetch Fetcher, d effect.Dispatcher, logger logging.Logger) *Model {
	return NewWithState(Initial(), fetch, d, logger)
}

// NewWithState starts the model from a prepared state, e.g. a cached list.
func NewWithState(initial State, fetch Fetcher, d effect.Dispatcher, logger logging.Logger) *Model {
	if logger == nil {
		logger = logging.Nop()
	}
	m := &Model{fetch: fetch}
	m.store = mvi.New(initial, Reduce, m.process, d, mvi.WithName("announcements"), mvi.WithLogger(logger))
	return m
}

func (m *Model) process(tx *mvi.Tx[State, Intent], intent Intent) {
	switch intent.(type) {
	case FetchAnnouncements, RefreshAnnouncements:
		tx.Apply(intent)

		_, refresh := intent.(RefreshAnnouncements)
		logger := tx.Logger()
		tx.Go(func(ctx context.Context) mvi.Result[Intent] {
			items, err := m.fetch.Execute(ctx)
			if err != nil {
				logger.Warn(ctx, "fetching announcements failed", "refresh", refresh, "error", err)
				return mvi.Then[Intent](FetchFailed{Err: err}, fetchErrorAlert(usecases.Message(err)))
			}
			if refresh {
				return mvi.Then[Intent](FetchSucceeded{Items: items}, refreshComplete())
			}
			return mvi.Then[Intent](FetchSucceeded{Items: items})
		})

	default:
		tx.Apply(intent)
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
