// Package effect defines the closed set of one-shot presentation commands a
// feature model may emit after a state transition.
//
// Effects are terminal: they never produce intents and never touch state.
// A model hands them to a Dispatcher, which forwards them to the presentation
// layer in call order without buffering or retries.
//
// The set of variants is sealed by an unexported marker method, so every
// consumer can switch over Toast, Alert, Haptic and Navigate exhaustively.
package effect

import (
	"fmt"
	"time"
)

// Effect is implemented only by the variants declared in this package.
type Effect interface {
	isEffect()
	fmt.Stringer
}

// Toast is a short transient message.
type Toast struct {
	Message  string
	Duration time.Duration
}

// ActionStyle mirrors the usual alert button roles.
type ActionStyle int

const (
	ActionDefault ActionStyle = iota
	ActionCancel
	ActionDestructive
)

func (s ActionStyle) String() string {
	switch s {
	case ActionCancel:
		return "cancel"
	case ActionDestructive:
		return "destructive"
	default:
		return "default"
	}
}

// AlertAction is a button offered by an Alert.
type AlertAction struct {
	Title string
	Style ActionStyle
}

// Alert is a modal message with a fixed list of actions.
type Alert struct {
	Title   string
	Message string
	Actions []AlertAction
}

// HapticStyle is the feedback intensity.
type HapticStyle int

const (
	HapticLight HapticStyle = iota
	HapticMedium
	HapticHeavy
)

func (s HapticStyle) String() string {
	switch s {
	case HapticMedium:
		return "medium"
	case HapticHeavy:
		return "heavy"
	default:
		return "light"
	}
}

// Haptic asks the presentation layer for physical feedback.
type Haptic struct {
	Style HapticStyle
}

// Route names a screen the presentation layer can switch to.
type Route string

const (
	RouteLogin         Route = "login"
	RouteHome          Route = "home"
	RouteAnnouncements Route = "announcements"
)

// Navigate triggers a screen change.
type Navigate struct {
	Route Route
}

func (Toast) isEffect()    {}
func (Alert) isEffect()    {}
func (Haptic) isEffect()   {}
func (Navigate) isEffect() {}

func (t Toast) String() string {
	return fmt.Sprintf("toast(%q, %s)", t.Message, t.Duration)
}

func (a Alert) String() string {
	return fmt.Sprintf("alert(%q, %q, %d actions)", a.Title, a.Message, len(a.Actions))
}

func (h Haptic) String() string {
	return "haptic(" + h.Style.String() + ")"
}

func (n Navigate) String() string {
	return "navigate(" + string(n.Route) + ")"
}

// OK is the single-button action list used by error alerts.
func OK() []AlertAction {
	return []AlertAction{{Title: "確定", Style: ActionDefault}}
}
