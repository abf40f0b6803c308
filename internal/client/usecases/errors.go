// Package usecases holds the single-operation collaborators the feature
// models call: authentication, session lookup, content fetch, password
// verification and account validation.
//
// Every failure leaves this package as an *Error carrying the text shown to
// the user, so models never inspect transport errors themselves.
package usecases

import "errors"

// Kind classifies a use case failure.
type Kind int

const (
	// KindValidation marks input rejected before any backend call.
	KindValidation Kind = iota
	// KindNetwork marks a backend or transport failure.
	KindNetwork
	// KindInvalidPassword marks a password the backend refused.
	KindInvalidPassword
	// KindStorage marks a failure of the local session store.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindInvalidPassword:
		return "invalid_password"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is a failure with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrEmptyAccount    = &Error{Kind: KindValidation, Message: "帳號不能為空"}
	ErrInvalidPassword = &Error{Kind: KindInvalidPassword, Message: "密碼錯誤，請重新輸入"}
)

// Message returns the text a feature state stores for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}

// backendError keeps an *Error returned by a backend and wraps anything else
// as a network failure carrying the backend's text.
func backendError(err error) error {
	var ue *Error
	if errors.As(err, &ue) {
		return err
	}
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}
