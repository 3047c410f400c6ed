package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okarpov/taskdeck/internal/server/models"
	"github.com/okarpov/taskdeck/internal/server/repositories/repomanager"
	"github.com/okarpov/taskdeck/internal/validation"
)

// TaskService implements task CRUD for a single authenticated user.
// Ownership is enforced by the repository queries: a task belonging to
// someone else looks exactly like a missing one.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns the user's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	tasks, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return tasks, nil
}

// Create validates the fields and stores a new pending task.
func (s *TaskService) Create(ctx context.Context, userID, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)

	if err := validateTaskFields(title, description, string(models.StatusPending)); err != nil {
		return nil, err
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.Create(ctx, &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// Update validates and overwrites title, description, and status of the
// user's task.
func (s *TaskService) Update(ctx context.Context, userID, taskID, title, description, status string) (*models.Task, error) {
	title = strings.TrimSpace(title)

	if err := validateTaskFields(title, description, status); err != nil {
		return nil, err
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.Update(ctx, &models.Task{
		ID:          taskID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.TaskStatus(status),
	})
	if err != nil {
		return nil, fmt.Errorf("error updating task: %w", err)
	}
	return task, nil
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	repo := s.repomanager.Tasks(s.db)
	if err := repo.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}

func validateTaskFields(title, description, status string) error {
	errs := validation.Errors{}
	if msg := validation.TaskTitle(title); msg != "" {
		errs.Add("title", msg)
	}
	if msg := validation.TaskDescription(description); msg != "" {
		errs.Add("description", msg)
	}
	if msg := validation.TaskStatus(status); msg != "" {
		errs.Add("status", msg)
	}
	return errs.AsError()
}
