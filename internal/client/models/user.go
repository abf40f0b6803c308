// Package models defines the client-side data carried between use cases,
// feature states and the backend.
package models

// User is an authenticated session.
type User struct {
	// Account is the login name as typed by the user.
	Account string `json:"account"`

	// Token is the opaque session token issued by the backend.
	Token string `json:"token"`
}
