// Package login is the account entry screen: account validation, the login
// request and its outcome.
package login

import "github.com/dmitrijs2005/mvikeeper/internal/client/models"

// State is the login screen snapshot.
type State struct {
	Account        string
	IsLoading      bool
	IsLoginEnabled bool
	ErrorMessage   string
	User           *models.User
}

// Initial is the empty form.
func Initial() State {
	return State{}
}

// Equal compares by value, including the logged-in user.
func (s State) Equal(o State) bool {
	if s.Account != o.Account || s.IsLoading != o.IsLoading ||
		s.IsLoginEnabled != o.IsLoginEnabled || s.ErrorMessage != o.ErrorMessage {
		return false
	}
	if s.User == nil || o.User == nil {
		return s.User == o.User
	}
	return *s.User == *o.User
}
