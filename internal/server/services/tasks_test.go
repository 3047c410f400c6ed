package services

import (
	"context"
	"errors"
	"testing"

	"github.com/okarpov/taskdeck/internal/common"
	"github.com/okarpov/taskdeck/internal/server/models"
	"github.com/okarpov/taskdeck/internal/validation"
)

func newTaskService(t *testing.T, rm *fakeRepoManager) *TaskService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { _ = db.Close() })
	return NewTaskService(db, rm)
}

func TestTaskCreate_Success(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(t, rm)

	task, err := s.Create(context.Background(), "u1", "  buy milk  ", "2 liters")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("empty task id")
	}
	if task.Title != "buy milk" {
		t.Fatalf("title not trimmed: %q", task.Title)
	}
	if task.Status != models.StatusPending {
		t.Fatalf("new task not pending: %q", task.Status)
	}
	if rm.t.lastCreated.UserID != "u1" {
		t.Fatalf("wrong owner: %q", rm.t.lastCreated.UserID)
	}
}

func TestTaskCreate_EmptyTitle(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(t, rm)

	_, err := s.Create(context.Background(), "u1", "   ", "")

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("want *validation.Error, got %v", err)
	}
	if _, ok := verr.Fields["title"]; !ok {
		t.Fatalf("missing title error: %+v", verr.Fields)
	}
}

func TestTaskList(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{listOut: []*models.Task{
		{ID: "t1", Title: "a"}, {ID: "t2", Title: "b"},
	}}}
	s := newTaskService(t, rm)

	tasks, err := s.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("want 2 tasks, got %d", len(tasks))
	}
}

func TestTaskUpdate_Success(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(t, rm)

	task, err := s.Update(context.Background(), "u1", "t1", "new title", "desc", "done")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if task.Status != models.StatusDone {
		t.Fatalf("status not applied: %q", task.Status)
	}
	if rm.t.lastUpdated.ID != "t1" || rm.t.lastUpdated.UserID != "u1" {
		t.Fatalf("wrong scoping: %+v", rm.t.lastUpdated)
	}
}

func TestTaskUpdate_BadStatus(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(t, rm)

	_, err := s.Update(context.Background(), "u1", "t1", "title", "", "archived")

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("want *validation.Error, got %v", err)
	}
	if _, ok := verr.Fields["status"]; !ok {
		t.Fatalf("missing status error: %+v", verr.Fields)
	}
}

func TestTaskUpdate_NotFound(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{updateErr: common.ErrNotFound}}
	s := newTaskService(t, rm)

	_, err := s.Update(context.Background(), "u1", "t9", "title", "", "pending")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTaskDelete(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := newTaskService(t, rm)

	if err := s.Delete(context.Background(), "u1", "t1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if rm.t.lastDeleted != "t1" {
		t.Fatalf("wrong task deleted: %q", rm.t.lastDeleted)
	}
}

func TestTaskDelete_NotFound(t *testing.T) {
	rm := &fakeRepoManager{t: &fakeTasksRepo{delErr: common.ErrNotFound}}
	s := newTaskService(t, rm)

	err := s.Delete(context.Background(), "u1", "t9")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
