// Package tasks contains the persistence layer for task records.
package tasks

import (
	"context"

	"github.com/okarpov/taskdeck/internal/server/models"
)

// Repository abstracts storage of tasks. Every method is scoped by owner:
// a task belonging to another user behaves as if it does not exist.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	GetByID(ctx context.Context, userID, taskID string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
