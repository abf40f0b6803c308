package mvi

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
)

// ErrClosed is returned by Handle once the store has been closed.
var ErrClosed = errors.New("store closed")

// Reducer is a pure transition function.
type Reducer[S, I any] func(state S, intent I) S

// Policy handles one intent on the store goroutine.
type Policy[S, I any] func(tx *Tx[S, I], intent I)

// ApplyAll is the policy of features without side effects.
func ApplyAll[S, I any](tx *Tx[S, I], intent I) {
	tx.Apply(intent)
}

// Result is what an asynchronous task feeds back into its store.
type Result[I any] struct {
	Intent  I
	Effects []effect.Effect
}

// Then builds a Result.
func Then[I any](intent I, effects ...effect.Effect) Result[I] {
	return Result[I]{Intent: intent, Effects: effects}
}

// Task is asynchronous work started by a policy. The context is cancelled
// when the store is closed.
type Task[I any] func(ctx context.Context) Result[I]

type envelope[I any] struct {
	intent  I
	effects []effect.Effect
	task    bool
	done    chan struct{}
}

type subscriber[S any] struct {
	id int
	fn func(S)
}

// Store serializes intent handling for one feature.
type Store[S, I any] struct {
	reduce     Reducer[S, I]
	policy     Policy[S, I]
	dispatcher effect.Dispatcher
	logger     logging.Logger

	mu      sync.RWMutex
	state   S
	subs    []subscriber[S]
	nextSub int

	mailbox  chan envelope[I]
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	inflight sync.WaitGroup
}

// Option configures a Store.
type Option func(*options)

type options struct {
	name   string
	logger logging.Logger
}

// WithName sets the name used in log records.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the store logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a store holding initial and starts its goroutine.
// A nil dispatcher discards effects.
func New[S, I any](initial S, reduce Reducer[S, I], policy Policy[S, I], d effect.Dispatcher, opts ...Option) *Store[S, I] {
	o := options{name: "store", logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if policy == nil {
		policy = ApplyAll[S, I]
	}
	if d == nil {
		d = effect.Discard
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Store[S, I]{
		reduce:     reduce,
		policy:     policy,
		dispatcher: d,
		logger:     o.logger.With("store", o.name),
		state:      initial,
		mailbox:    make(chan envelope[I]),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	go s.run()

	return s
}

// Handle submits intent and returns once its synchronous step has been
// applied, published and its effects dispatched. Asynchronous work started
// by the step continues in the background.
func (s *Store[S, I]) Handle(ctx context.Context, intent I) error {
	env := envelope[I]{intent: intent, done: make(chan struct{})}

	select {
	case s.mailbox <- env:
	case <-s.ctx.Done():
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-env.done:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the latest published state.
func (s *Store[S, I]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn for every state published from now on.
func (s *Store[S, I]) Subscribe(fn func(S)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber[S]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Wait blocks until every task started so far has been fed back into the
// store, or dropped because the store was closed. It must not be called
// concurrently with Handle.
func (s *Store[S, I]) Wait() {
	s.inflight.Wait()
}

// Close stops the store goroutine and cancels running tasks. Late task
// results are dropped.
func (s *Store[S, I]) Close() {
	s.cancel()
	<-s.done
}

func (s *Store[S, I]) run() {
	defer close(s.done)

	for {
		select {
		case env := <-s.mailbox:
			if s.ctx.Err() != nil {
				if env.task {
					s.inflight.Done()
				}
				return
			}
			s.process(env)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Store[S, I]) process(env envelope[I]) {
	if env.task {
		defer s.inflight.Done()
	}

	s.logger.Debug(s.ctx, "handling intent", "intent", fmt.Sprintf("%T", env.intent), "async_result", env.task)

	tx := &Tx[S, I]{store: s}
	s.policy(tx, env.intent)

	for _, e := range tx.effects {
		s.dispatch(e)
	}
	for _, e := range env.effects {
		s.dispatch(e)
	}

	if env.done != nil {
		close(env.done)
	}
}

func (s *Store[S, I]) apply(intent I) S {
	s.mu.Lock()
	s.state = s.reduce(s.state, intent)
	state := s.state
	subs := make([]subscriber[S], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(state)
	}
	return state
}

func (s *Store[S, I]) dispatch(e effect.Effect) {
	s.logger.Debug(s.ctx, "dispatching effect", "effect", e.String())
	s.dispatcher.Dispatch(s.ctx, e)
}

func (s *Store[S, I]) start(task Task[I]) {
	s.inflight.Add(1)

	go func() {
		res := task(s.ctx)
		env := envelope[I]{intent: res.Intent, effects: res.Effects, task: true}

		select {
		case s.mailbox <- env:
		case <-s.ctx.Done():
			s.logger.Debug(context.Background(), "dropping task result of closed store", "intent", fmt.Sprintf("%T", res.Intent))
			s.inflight.Done()
		}
	}()
}

// Tx is the handle a policy uses during one step. It is only valid on the
// store goroutine while the policy runs.
type Tx[S, I any] struct {
	store   *Store[S, I]
	effects []effect.Effect
}

// State returns the current state.
func (tx *Tx[S, I]) State() S {
	return tx.store.State()
}

// Context is cancelled when the store closes.
func (tx *Tx[S, I]) Context() context.Context {
	return tx.store.ctx
}

// Apply reduces intent into the state and publishes the result.
func (tx *Tx[S, I]) Apply(intent I) S {
	return tx.store.apply(intent)
}

// Handle re-enters the policy with intent within the same step.
func (tx *Tx[S, I]) Handle(intent I) {
	tx.store.policy(tx, intent)
}

// Dispatch queues effects; they are delivered after the step completes.
func (tx *Tx[S, I]) Dispatch(effects ...effect.Effect) {
	tx.effects = append(tx.effects, effects...)
}

// Go starts task in the background.
func (tx *Tx[S, I]) Go(task Task[I]) {
	tx.store.start(task)
}

// Logger returns the store logger.
func (tx *Tx[S, I]) Logger() logging.Logger {
	return tx.store.logger
}
