// Package services implements the client-side use cases on top of the
// remote API and the local session store.
package services

import (
	"context"
	"errors"

	"github.com/okarpov/taskdeck/internal/client/api"
	"github.com/okarpov/taskdeck/internal/client/store"
	"github.com/okarpov/taskdeck/internal/common"
	"github.com/okarpov/taskdeck/internal/logging"
)

// AuthService handles signup, login and session persistence.
type AuthService struct {
	client api.Client
	store  store.Repository
	logger logging.Logger

	username string
}

func NewAuthService(client api.Client, st store.Repository, logger logging.Logger) *AuthService {
	s := &AuthService{client: client, store: st, logger: logger}

	// Rotated tokens are persisted so the session survives a restart.
	client.OnSessionRefreshed(func(access, refresh string) {
		ctx := context.Background()
		err := st.Save(ctx, &store.Session{
			Username:     s.username,
			AccessToken:  access,
			RefreshToken: refresh,
		})
		if err != nil {
			logger.Warn(ctx, "failed to persist refreshed session", "error", err)
		}
	})

	return s
}

// Username returns the name of the logged-in user, empty when logged out.
func (s *AuthService) Username() string {
	return s.username
}

// Signup registers a new account. Validation and duplicate-name errors
// come back from the server as-is for the caller to display.
func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	return s.client.Signup(ctx, username, password)
}

// Login authenticates against the server and persists the issued token
// pair locally.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	pair, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.username = username
	s.client.SetSession(pair.AccessToken, pair.RefreshToken)

	err = s.store.Save(ctx, &store.Session{
		Username:     username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		s.logger.Warn(ctx, "failed to persist session", "error", err)
	}

	return nil
}

// Resume restores a previously saved session. It returns
// common.ErrNotFound when no session is stored.
func (s *AuthService) Resume(ctx context.Context) error {
	sess, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	s.username = sess.Username
	s.client.SetSession(sess.AccessToken, sess.RefreshToken)

	return nil
}

// Logout drops the session both in memory and on disk.
func (s *AuthService) Logout(ctx context.Context) error {
	s.username = ""
	s.client.ClearSession()

	if err := s.store.Clear(ctx); err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}

	return nil
}
