package client

import (
	"errors"

	"github.com/dmitrijs2005/mvikeeper/internal/common"
)

// userError carries the text shown to the user and unwraps to the shared
// sentinel, so callers outside the transport can match it.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

var (
	ErrUnavailable = errors.New("網路連線失敗")
	// ErrUnauthorized matches common.ErrUnauthorized with errors.Is.
	ErrUnauthorized error = &userError{msg: "登入已失效，請重新登入", err: common.ErrUnauthorized}
)
