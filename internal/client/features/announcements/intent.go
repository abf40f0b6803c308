package announcements

import "github.com/dmitrijs2005/mvikeeper/internal/client/models"

type Intent interface {
	isIntent()
}

// FetchAnnouncements is the initial load.
type FetchAnnouncements struct{}

// RefreshAnnouncements reloads on user request and ends with a haptic.
type RefreshAnnouncements struct{}

type FetchSucceeded struct {
	Items []models.Announcement
}

type FetchFailed struct {
	Err error
}

func (FetchAnnouncements) isIntent()   {}
func (RefreshAnnouncements) isIntent() {}
func (FetchSucceeded) isIntent()       {}
func (FetchFailed) isIntent()          {}
