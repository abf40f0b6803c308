package navigation

// Intent is a navigation request.
type Intent interface {
	isIntent()
}

// NavigateToAnnouncements opens announcements without verification.
type NavigateToAnnouncements struct{}

// RequestSecureAccess asks for Destination behind verification.
type RequestSecureAccess struct {
	Destination Destination
}

// SecurityVerificationSuccess admits the user to Destination, which must be
// the destination captured when verification was requested.
type SecurityVerificationSuccess struct {
	Destination Destination
}

type SecurityVerificationFailed struct{}

type DismissCurrentNavigation struct{}

type Reset struct{}

func (NavigateToAnnouncements) isIntent()     {}
func (RequestSecureAccess) isIntent()         {}
func (SecurityVerificationSuccess) isIntent() {}
func (SecurityVerificationFailed) isIntent()  {}
func (DismissCurrentNavigation) isIntent()    {}
func (Reset) isIntent()                       {}
