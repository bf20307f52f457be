package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dayflow/internal/models"
)

func newTaskService(gw *fakeGateway) *Tasks {
	s := NewTasks(gw)
	s.Now = func() time.Time { return testNow }
	return s
}

func seedTasks(gw *fakeGateway, tasks ...models.Task) {
	gw.tasks = tasks
}

func TestTasksAdd_CreatesTodo(t *testing.T) {
	gw := &fakeGateway{}
	s := newTaskService(gw)

	task, err := s.Add(context.Background(), "Buy milk", "MyList", "", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.Status != models.TaskStatusTodo {
		t.Errorf("new task status = %s, want TODO", task.Status)
	}
	if task.ID == "" {
		t.Error("new task has no id")
	}
	if len(s.All("")) != 1 {
		t.Error("task missing from snapshot")
	}
}

func TestTasksAdd_RejectsInvalid(t *testing.T) {
	gw := &fakeGateway{}
	s := newTaskService(gw)

	if _, err := s.Add(context.Background(), "", "MyList", "", ""); err == nil {
		t.Error("empty text accepted")
	}
	if _, err := s.Add(context.Background(), "x", "MyList", "", "not-a-date"); err == nil {
		t.Error("malformed due date accepted")
	}
	if len(gw.tasks) != 0 {
		t.Error("invalid task reached the gateway")
	}
}

func TestTasksToggleStatus(t *testing.T) {
	gw := &fakeGateway{}
	seedTasks(gw, models.Task{ID: "t1", Text: "Run", Category: "Exercise", Status: models.TaskStatusTodo})
	s := newTaskService(gw)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	ctx := context.Background()
	task, err := s.ToggleStatus(ctx, "t1")
	if err != nil {
		t.Fatalf("ToggleStatus failed: %v", err)
	}
	if task.Status != models.TaskStatusDone {
		t.Errorf("status = %s, want DONE", task.Status)
	}
	task, _ = s.ToggleStatus(ctx, "t1")
	if task.Status != models.TaskStatusTodo {
		t.Errorf("status after second toggle = %s, want TODO", task.Status)
	}
}

func TestTasksSoftDeleteRestorePurge(t *testing.T) {
	gw := &fakeGateway{}
	seedTasks(gw, models.Task{ID: "t1", Text: "Run", Category: "Exercise", Status: models.TaskStatusTodo})
	s := newTaskService(gw)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	ctx := context.Background()

	deleted, err := s.SoftDelete(ctx, "t1")
	if err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	if !deleted.Deleted || deleted.DeletedAt == nil {
		t.Fatalf("soft delete did not set flag and timestamp: %+v", deleted)
	}
	if *deleted.DeletedAt != testNow.UnixMilli() {
		t.Errorf("deletedAt = %d, want %d", *deleted.DeletedAt, testNow.UnixMilli())
	}
	if len(s.All("")) != 0 {
		t.Error("deleted task still listed")
	}
	if len(s.Trash()) != 1 {
		t.Error("deleted task missing from trash")
	}

	restored, err := s.Restore(ctx, "t1")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Deleted || restored.DeletedAt != nil {
		t.Errorf("restore did not clear deletion state: %+v", restored)
	}
	if len(s.All("")) != 1 {
		t.Error("restored task not listed")
	}

	if _, err := s.SoftDelete(ctx, "t1"); err != nil {
		t.Fatalf("second SoftDelete failed: %v", err)
	}
	if err := s.Purge(ctx, "t1"); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if len(gw.tasks) != 0 {
		t.Error("purged task still on the server")
	}
	if _, err := s.Get("t1"); err == nil {
		t.Error("purged task still in snapshot")
	}
}

func TestTasksAll_FiltersByCategory(t *testing.T) {
	gw := &fakeGateway{}
	deletedAt := int64(1700000000000)
	seedTasks(gw,
		models.Task{ID: "t1", Text: "Run", Category: "Exercise", Status: models.TaskStatusTodo},
		models.Task{ID: "t2", Text: "Read", Category: "Study", Status: models.TaskStatusTodo},
		models.Task{ID: "t3", Text: "Old", Category: "Exercise", Status: models.TaskStatusDone, Deleted: true, DeletedAt: &deletedAt},
	)
	s := newTaskService(gw)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	exercise := s.All("Exercise")
	if len(exercise) != 1 || exercise[0].ID != "t1" {
		t.Errorf("All(Exercise) = %+v, want just t1", exercise)
	}
	if got := len(s.All("")); got != 2 {
		t.Errorf("All(\"\") returned %d tasks, want 2", got)
	}
}

func TestTasksGet_NotFound(t *testing.T) {
	s := newTaskService(&fakeGateway{})
	_, err := s.Get("missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}
