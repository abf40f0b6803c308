package navigation

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/dmitrijs2005/mvikeeper/internal/mvi"
)

var ErrNilIntent = errors.New("navigation: nil intent")

// Manager owns the application navigation state.
type Manager struct {
	store *mvi.Store[ViewState, Intent]
}

// NewManager starts a manager in the Initial state.
func NewManager(d effect.Dispatcher, logger logging.Logger) *Manager {
	opts := []mvi.Option{mvi.WithName("navigation")}
	if logger != nil {
		opts = append(opts, mvi.WithLogger(logger))
	}
	return &Manager{store: mvi.New(Initial(), Reduce, process, d, opts...)}
}

func process(tx *mvi.Tx[ViewState, Intent], intent Intent) {
	tx.Apply(intent)

	switch intent.(type) {
	case RequestSecureAccess:
		tx.Dispatch(effect.Toast{Message: "需要安全驗證", Duration: time.Second})
	case SecurityVerificationSuccess:
		tx.Dispatch(
			effect.Toast{Message: "驗證成功，正在跳轉", Duration: time.Second},
			effect.Haptic{Style: effect.HapticLight},
		)
	case SecurityVerificationFailed:
		tx.Dispatch(effect.Toast{Message: "驗證失敗", Duration: 2 * time.Second})
	case DismissCurrentNavigation:
		tx.Dispatch(effect.Toast{Message: "已取消操作", Duration: time.Second})
	}
}

func (m *Manager) Handle(ctx context.Context, intent Intent) error {
	if intent == nil {
		return ErrNilIntent
	}
	return m.store.Handle(ctx, intent)
}

func (m *Manager) State() ViewState {
	return m.store.State()
}

func (m *Manager) Subscribe(fn func(ViewState)) (cancel func()) {
	return m.store.Subscribe(fn)
}

func (m *Manager) Close() {
	m.store.Close()
}

// RequestSecureAnnouncementsAccess is the entry point of the home screen.
func (m *Manager) RequestSecureAnnouncementsAccess(ctx context.Context) error {
	return m.Handle(ctx, RequestSecureAccess{Destination: DestinationAnnouncements})
}

// NavigateToAnnouncements skips verification.
func (m *Manager) NavigateToAnnouncements(ctx context.Context) error {
	return m.Handle(ctx, NavigateToAnnouncements{})
}

func (m *Manager) SecurityVerificationSucceeded(ctx context.Context, d Destination) error {
	return m.Handle(ctx, SecurityVerificationSuccess{Destination: d})
}

func (m *Manager) SecurityVerificationFailed(ctx context.Context) error {
	return m.Handle(ctx, SecurityVerificationFailed{})
}

func (m *Manager) DismissCurrentNavigation(ctx context.Context) error {
	return m.Handle(ctx, DismissCurrentNavigation{})
}

// ResetNavigation clears navigation when a screen goes away.
func (m *Manager) ResetNavigation(ctx context.Context) error {
	return m.Handle(ctx, Reset{})
}
