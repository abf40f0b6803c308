// Package models holds the records kept by the server repositories.
package models

import "time"

type User struct {
	ID          string
	Account     string
	CreatedAt   time.Time
	LastLoginAt time.Time
}
