// Package users contains the persistence layer for account records.
package users

import (
	"context"

	"github.com/okarpov/taskdeck/internal/server/models"
)

// Repository abstracts storage of user accounts.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
