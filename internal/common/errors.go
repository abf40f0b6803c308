package common

import "errors"

var (
	// repository errors
	ErrNotFound = errors.New("not found")

	// auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")

	// validation errors
	ErrEmptyAccount = errors.New("account must not be empty")
)
