package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestPresenter_RendersEffects(t *testing.T) {
	var buf bytes.Buffer
	q := newEventQueue()
	p := newPresenter(&buf, q, logging.Nop())
	ctx := context.Background()

	p.Dispatch(ctx, effect.Toast{Message: "登入成功", Duration: 2 * time.Second})
	p.Dispatch(ctx, effect.Alert{Title: "登入失敗", Message: "網路錯誤", Actions: effect.OK()})
	p.Dispatch(ctx, effect.Alert{Title: "注意"})
	p.Dispatch(ctx, effect.Haptic{Style: effect.HapticLight})

	assert.Equal(t,
		"[toast] 登入成功\n"+
			"[alert] 登入失敗\n"+
			"        網路錯誤\n"+
			"        [確定]\n"+
			"[alert] 注意\n"+
			"\a",
		buf.String())
	assert.Empty(t, q.take())
}

func TestPresenter_NavigateIsQueued(t *testing.T) {
	var buf bytes.Buffer
	q := newEventQueue()
	p := newPresenter(&buf, q, logging.Nop())

	p.Dispatch(context.Background(), effect.Navigate{Route: effect.RouteHome})

	assert.Empty(t, buf.String())
	assert.Equal(t, []event{routeEvent{route: effect.RouteHome}}, q.take())
}

func TestEventQueue(t *testing.T) {
	q := newEventQueue()

	q.push(navEvent{})
	q.push(routeEvent{route: effect.RouteLogin})

	select {
	case <-q.ready:
	default:
		t.Fatal("push did not signal")
	}
	select {
	case <-q.ready:
		t.Fatal("signal must coalesce")
	default:
	}

	assert.Len(t, q.take(), 2)
	assert.Empty(t, q.take())
}

func TestHelpText(t *testing.T) {
	assert.Contains(t, helpText(screenLogin), "account <name>")
	assert.Contains(t, helpText(screenHome), "logout")
	assert.Contains(t, helpText(screenVerification), "verify [password]")
	assert.Contains(t, helpText(screenAnnouncements), "refresh")
	assert.Contains(t, helpText(screenHome), "exit")
}
