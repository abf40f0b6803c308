package security

import "github.com/dmitrijs2005/mvikeeper/internal/client/navigation"

type Intent interface {
	isIntent()
}

// VerifyPassword checks Password before admitting the user to Destination.
type VerifyPassword struct {
	Password    string
	Destination navigation.Destination
}

type VerificationSucceeded struct {
	Destination navigation.Destination
}

type VerificationFailed struct {
	Err error
}

type ClearError struct{}

func (VerifyPassword) isIntent()        {}
func (VerificationSucceeded) isIntent() {}
func (VerificationFailed) isIntent()    {}
func (ClearError) isIntent()            {}
