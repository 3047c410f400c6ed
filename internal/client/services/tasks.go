package services

import (
	"context"

	"github.com/okarpov/taskdeck/internal/client/api"
)

// TaskService exposes the task operations the UI needs.
type TaskService struct {
	client api.Client
}

func NewTaskService(client api.Client) *TaskService {
	return &TaskService{client: client}
}

func (s *TaskService) List(ctx context.Context) ([]api.Task, error) {
	return s.client.ListTasks(ctx)
}

func (s *TaskService) Create(ctx context.Context, title, description string) (*api.Task, error) {
	return s.client.CreateTask(ctx, title, description)
}

func (s *TaskService) Update(ctx context.Context, t *api.Task) (*api.Task, error) {
	return s.client.UpdateTask(ctx, t.ID, t.Title, t.Description, t.Status)
}

// Toggle flips a task between pending and done.
func (s *TaskService) Toggle(ctx context.Context, t *api.Task) (*api.Task, error) {
	status := api.StatusDone
	if t.Status == api.StatusDone {
		status = api.StatusPending
	}
	return s.client.UpdateTask(ctx, t.ID, t.Title, t.Description, status)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteTask(ctx, id)
}
