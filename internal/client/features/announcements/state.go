// Package announcements is the announcement list screen with initial load
// and pull-to-refresh.
package announcements

import (
	"slices"

	"github.com/dmitrijs2005/mvikeeper/internal/client/models"
)

type State struct {
	Announcements []models.Announcement
	IsLoading     bool
	ErrorMessage  string
}

func Initial() State {
	return State{}
}

func (s State) Equal(o State) bool {
	return s.IsLoading == o.IsLoading &&
		s.ErrorMessage == o.ErrorMessage &&
		slices.Equal(s.Announcements, o.Announcements)
}
