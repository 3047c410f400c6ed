// Package repomanager wires entity repositories to a database handle.
// Repositories are constructed per call so services can hand them either
// the root *sql.DB or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/okarpov/taskdeck/internal/dbx"
	"github.com/okarpov/taskdeck/internal/server/repositories/refreshtokens"
	"github.com/okarpov/taskdeck/internal/server/repositories/tasks"
	"github.com/okarpov/taskdeck/internal/server/repositories/users"
)

// RepositoryManager produces repositories bound to the given handle.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
