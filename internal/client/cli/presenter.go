package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
)

// syncWriter serializes writes coming from the REPL and store goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// newPresenter renders effects on out. Navigation is deferred to the REPL
// through q.
func newPresenter(out io.Writer, q *eventQueue, logger logging.Logger) effect.Handler {
	return effect.Handler{
		Toast: func(_ context.Context, t effect.Toast) {
			fmt.Fprintf(out, "[toast] %s\n", t.Message)
		},
		Alert: func(_ context.Context, a effect.Alert) {
			fmt.Fprintf(out, "[alert] %s\n", a.Title)
			if a.Message != "" {
				fmt.Fprintf(out, "        %s\n", a.Message)
			}
			if len(a.Actions) > 0 {
				titles := make([]string, 0, len(a.Actions))
				for _, act := range a.Actions {
					titles = append(titles, "["+act.Title+"]")
				}
				fmt.Fprintf(out, "        %s\n", strings.Join(titles, " "))
			}
		},
		Haptic: func(ctx context.Context, h effect.Haptic) {
			fmt.Fprint(out, "\a")
			logger.Debug(ctx, "haptic", "style", h.Style.String())
		},
		Navigate: func(_ context.Context, n effect.Navigate) {
			q.push(routeEvent{route: n.Route})
		},
	}
}
