// Package navigation holds the screen-level state machine that gates
// protected destinations behind a security verification step.
//
// The machine has three states: none, announcements and
// securityVerification(destination). A protected destination is requested
// with RequestSecureAccess, which parks the destination until the
// verification screen reports success, failure or dismissal.
package navigation

// Destination is a screen that requires security verification.
type Destination int

const (
	DestinationAnnouncements Destination = iota
	DestinationSettings
	DestinationUserProfile
)

func (d Destination) String() string {
	switch d {
	case DestinationAnnouncements:
		return "announcements"
	case DestinationSettings:
		return "settings"
	case DestinationUserProfile:
		return "user_profile"
	default:
		return "unknown"
	}
}

// Kind is the tag of a State.
type Kind int

const (
	KindNone Kind = iota
	KindAnnouncements
	KindSecurityVerification
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAnnouncements:
		return "announcements"
	case KindSecurityVerification:
		return "security_verification"
	default:
		return "unknown"
	}
}

// State is the current navigation node. Destination is only meaningful for
// KindSecurityVerification.
type State struct {
	Kind        Kind
	Destination Destination
}

func None() State          { return State{Kind: KindNone} }
func Announcements() State { return State{Kind: KindAnnouncements} }

func SecurityVerification(d Destination) State {
	return State{Kind: KindSecurityVerification, Destination: d}
}

func (s State) String() string {
	if s.Kind == KindSecurityVerification {
		return s.Kind.String() + "(" + s.Destination.String() + ")"
	}
	return s.Kind.String()
}

// ViewState is what the presentation layer renders. IsSecurityVerificationRequired
// and PendingDestination are set if and only if Current is a security
// verification.
type ViewState struct {
	Current                        State
	IsSecurityVerificationRequired bool
	PendingDestination             *Destination
}

// Initial is the state at start-up and after Reset.
func Initial() ViewState {
	return ViewState{Current: None()}
}

func viewOf(s State) ViewState {
	if s.Kind != KindSecurityVerification {
		return ViewState{Current: s}
	}
	d := s.Destination
	return ViewState{
		Current:                        s,
		IsSecurityVerificationRequired: true,
		PendingDestination:             &d,
	}
}

func (v ViewState) ShouldShowAnnouncements() bool {
	return v.Current.Kind == KindAnnouncements
}

func (v ViewState) ShouldShowSecurityVerification() bool {
	return v.Current.Kind == KindSecurityVerification
}

// Consistent reports whether the derived fields agree with Current.
func (v ViewState) Consistent() bool {
	verifying := v.Current.Kind == KindSecurityVerification
	if v.IsSecurityVerificationRequired != verifying {
		return false
	}
	if v.PendingDestination == nil {
		return !verifying
	}
	return verifying && *v.PendingDestination == v.Current.Destination
}

// Equal compares by value, including the pending destination.
func (v ViewState) Equal(o ViewState) bool {
	if v.Current != o.Current || v.IsSecurityVerificationRequired != o.IsSecurityVerificationRequired {
		return false
	}
	if v.PendingDestination == nil || o.PendingDestination == nil {
		return v.PendingDestination == o.PendingDestination
	}
	return *v.PendingDestination == *o.PendingDestination
}
