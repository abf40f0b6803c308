package cli

import (
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/client/features/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/security"
	"github.com/dmitrijs2005/mvikeeper/internal/client/navigation"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
)

type event interface{ isEvent() }

type routeEvent struct{ route effect.Route }

type navEvent struct{ state navigation.ViewState }

type securityEvent struct {
	model *security.Model
	state security.State
}

type announcementsEvent struct{ state announcements.State }

func (routeEvent) isEvent()         {}
func (navEvent) isEvent()           {}
func (securityEvent) isEvent()      {}
func (announcementsEvent) isEvent() {}

// eventQueue is an unbounded FIFO. push never blocks, so it is safe to call
// from store goroutines.
type eventQueue struct {
	mu     sync.Mutex
	events []event
	ready  chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{ready: make(chan struct{}, 1)}
}

func (q *eventQueue) push(e event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// take removes and returns everything queued so far.
func (q *eventQueue) take() []event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}
