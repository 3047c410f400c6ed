package models

import "time"

// RefreshToken is a server-stored long-lived credential. Tokens rotate:
// using one deletes it and mints a replacement.
type RefreshToken struct {
	Token   string
	UserID  string
	Expires time.Time
}
