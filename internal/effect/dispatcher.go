package effect

import (
	"context"
	"sync"
)

// Dispatcher forwards effects to the presentation layer.
type Dispatcher interface {
	Dispatch(ctx context.Context, e Effect)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, e Effect)

func (f DispatcherFunc) Dispatch(ctx context.Context, e Effect) {
	f(ctx, e)
}

// Discard drops every effect.
var Discard Dispatcher = DispatcherFunc(func(context.Context, Effect) {})

// Handler resolves each variant to a concrete UI action. Nil callbacks
// ignore their variant.
type Handler struct {
	Toast    func(ctx context.Context, t Toast)
	Alert    func(ctx context.Context, a Alert)
	Haptic   func(ctx context.Context, h Haptic)
	Navigate func(ctx context.Context, n Navigate)
}

// Dispatch matches on the variant tag.
func (h Handler) Dispatch(ctx context.Context, e Effect) {
	switch e := e.(type) {
	case Toast:
		if h.Toast != nil {
			h.Toast(ctx, e)
		}
	case Alert:
		if h.Alert != nil {
			h.Alert(ctx, e)
		}
	case Haptic:
		if h.Haptic != nil {
			h.Haptic(ctx, e)
		}
	case Navigate:
		if h.Navigate != nil {
			h.Navigate(ctx, e)
		}
	}
}

// Recorder keeps every dispatched effect in order. It is safe for
// concurrent use and is mostly useful in tests.
type Recorder struct {
	mu      sync.Mutex
	effects []Effect
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Dispatch(_ context.Context, e Effect) {
	r.mu.Lock()
	r.effects = append(r.effects, e)
	r.mu.Unlock()
}

// Effects returns a copy of everything recorded so far.
func (r *Recorder) Effects() []Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

// Reset forgets recorded effects.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.effects = nil
	r.mu.Unlock()
}
