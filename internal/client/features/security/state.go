// Package security is the password prompt that guards protected
// destinations. A successful verification is forwarded to the navigator
// together with the destination captured when the prompt was opened.
package security

type State struct {
	IsLoading                bool
	IsVerificationSuccessful bool
	ErrorMessage             string
}

func Initial() State {
	return State{}
}
