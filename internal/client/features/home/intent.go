package home

import "github.com/dmitrijs2005/mvikeeper/internal/client/models"

type Intent interface {
	isIntent()
}

// ViewAppeared reloads the current user from the session.
type ViewAppeared struct{}

// UserLoaded carries the session user, nil when nobody is logged in.
type UserLoaded struct {
	User *models.User
}

type LogoutClicked struct{}

type LogoutSucceeded struct{}

type LogoutFailed struct {
	Err error
}

// OpenAnnouncements requests the protected announcements screen.
type OpenAnnouncements struct{}

type ClearError struct{}

func (ViewAppeared) isIntent()      {}
func (UserLoaded) isIntent()        {}
func (LogoutClicked) isIntent()     {}
func (LogoutSucceeded) isIntent()   {}
func (LogoutFailed) isIntent()      {}
func (OpenAnnouncements) isIntent() {}
func (ClearError) isIntent()        {}
