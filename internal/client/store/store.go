// Package store keeps the client's persistent state: the logged-in
// username and the current token pair, in a local SQLite database.
package store

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/okarpov/taskdeck/internal/client/store/migrations"
)

// Session is the locally persisted login state.
type Session struct {
	Username     string
	AccessToken  string
	RefreshToken string
}

// InitDatabase opens (creating if needed) the session database at dsn and
// applies migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
