// Package api wraps the server's HTTP interface behind a small Client
// interface. The HTTP implementation attaches the bearer token, maps
// response statuses to sentinel errors, and transparently refreshes an
// expired access token once per call.
package api

import (
	"context"
	"time"
)

// Task statuses as they appear on the wire.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Task mirrors the task records returned by the server.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TokenPair bundles the access and refresh tokens issued at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Client is the remote API surface the client services depend on.
type Client interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Ping(ctx context.Context) error

	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, title, description string) (*Task, error)
	UpdateTask(ctx context.Context, id, title, description, status string) (*Task, error)
	DeleteTask(ctx context.Context, id string) error

	// SetSession installs the token pair used for authenticated calls.
	SetSession(accessToken, refreshToken string)
	// ClearSession drops the installed tokens.
	ClearSession()
	// OnSessionRefreshed registers a callback invoked after a successful
	// token rotation, so the caller can persist the new pair.
	OnSessionRefreshed(fn func(accessToken, refreshToken string))
}
