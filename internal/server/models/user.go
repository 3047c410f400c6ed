// Package models contains the server-side database entities.
package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and never
// leaves the server.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
