// Package home is the signed-in landing screen: current user, logout and
// the entry to protected announcements.
package home

import "github.com/dmitrijs2005/mvikeeper/internal/client/models"

type State struct {
	User         *models.User
	IsLoading    bool
	ErrorMessage string
}

func Initial() State {
	return State{}
}

func (s State) Equal(o State) bool {
	if s.IsLoading != o.IsLoading || s.ErrorMessage != o.ErrorMessage {
		return false
	}
	if s.User == nil || o.User == nil {
		return s.User == o.User
	}
	return *s.User == *o.User
}
