package login

import "github.com/dmitrijs2005/mvikeeper/internal/client/models"

// Intent is a login screen action or result.
type Intent interface {
	isIntent()
}

type AccountChanged struct {
	Text string
}

type LoginClicked struct{}

type LoginSucceeded struct {
	User models.User
}

type LoginFailed struct {
	Err error
}

type ClearError struct{}

// AccountValidationFailed follows an AccountChanged whose text was truncated.
type AccountValidationFailed struct {
	Message string
}

func (AccountChanged) isIntent()          {}
func (LoginClicked) isIntent()            {}
func (LoginSucceeded) isIntent()          {}
func (LoginFailed) isIntent()             {}
func (ClearError) isIntent()              {}
func (AccountValidationFailed) isIntent() {}
