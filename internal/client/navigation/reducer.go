package navigation

import "fmt"

// Reduce is the navigation transition function. Every transition is defined
// from every state.
func Reduce(_ ViewState, intent Intent) ViewState {
	switch in := intent.(type) {
	case NavigateToAnnouncements:
		return viewOf(Announcements())
	case RequestSecureAccess:
		return viewOf(SecurityVerification(in.Destination))
	case SecurityVerificationSuccess:
		if in.Destination == DestinationAnnouncements {
			return viewOf(Announcements())
		}
		// settings and user profile have no screen yet
		return viewOf(None())
	case SecurityVerificationFailed, DismissCurrentNavigation:
		return viewOf(None())
	case Reset:
		return Initial()
	default:
		panic(fmt.Sprintf("navigation: unhandled intent %T", intent))
	}
}
