package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/okarpov/taskdeck/internal/common"
	"github.com/okarpov/taskdeck/internal/dbx"
)

const (
	keyUsername     = "username"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// Repository reads and writes the persisted session.
type Repository interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// SQLiteRepository stores the session as key/value rows.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load returns the stored session, or common.ErrNotFound when no session
// has been saved.
func (r *SQLiteRepository) Load(ctx context.Context) (*Session, error) {
	s := &Session{}

	var err error
	if s.Username, err = r.get(ctx, keyUsername); err != nil {
		return nil, err
	}
	if s.AccessToken, err = r.get(ctx, keyAccessToken); err != nil {
		return nil, err
	}
	if s.RefreshToken, err = r.get(ctx, keyRefreshToken); err != nil {
		return nil, err
	}

	return s, nil
}

// Save overwrites the stored session.
func (r *SQLiteRepository) Save(ctx context.Context, s *Session) error {
	if err := r.set(ctx, keyUsername, s.Username); err != nil {
		return err
	}
	if err := r.set(ctx, keyAccessToken, s.AccessToken); err != nil {
		return err
	}
	return r.set(ctx, keyRefreshToken, s.RefreshToken)
}

// Clear wipes the stored session, e.g. on logout or rejected credentials.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	return err
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
