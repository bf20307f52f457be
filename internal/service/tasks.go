package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"dayflow/internal/models"
	"dayflow/internal/validation"
)

// TaskGateway is the slice of the persistence gateway the task service
// needs. *gateway.Client satisfies it.
type TaskGateway interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, id string, fields map[string]any) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Tasks maintains the client-side task snapshot. The lifecycle is plain
// CRUD with soft delete: delete sets the flag and timestamp, restore clears
// both, purge erases the record for good.
type Tasks struct {
	gw TaskGateway

	// Now supplies the deletion timestamp. Tests override it.
	Now func() time.Time

	mu    sync.Mutex
	tasks []models.Task
}

// NewTasks creates the task service over the given gateway.
func NewTasks(gw TaskGateway) *Tasks {
	return &Tasks{gw: gw, Now: time.Now}
}

// Refresh replaces the snapshot with the server's tasks.
func (s *Tasks) Refresh(ctx context.Context) error {
	tasks, err := s.gw.ListTasks(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	return nil
}

// All returns every non-deleted task, optionally filtered by category.
func (s *Tasks) All(category string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Task
	for _, t := range s.tasks {
		if t.Deleted {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Trash returns soft-deleted tasks, most recently deleted first.
func (s *Tasks) Trash() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Task
	for _, t := range s.tasks {
		if t.Deleted {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := int64(0), int64(0)
		if out[i].DeletedAt != nil {
			di = *out[i].DeletedAt
		}
		if out[j].DeletedAt != nil {
			dj = *out[j].DeletedAt
		}
		return di > dj
	})
	return out
}

// Get returns one task, deleted or not.
func (s *Tasks) Get(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, &NotFoundError{Kind: "task", ID: id}
}

// Add validates and persists a new TODO task.
func (s *Tasks) Add(ctx context.Context, text, category, notes, dueDate string) (models.Task, error) {
	task := models.Task{
		ID:       uuid.New().String(),
		Text:     text,
		Category: category,
		Status:   models.TaskStatusTodo,
		Notes:    notes,
		Date:     dueDate,
	}
	if err := validation.ValidateTask(task); err != nil {
		return models.Task{}, err
	}

	created, err := s.gw.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, created)
	return created, nil
}

// ToggleStatus flips a task between TODO and DONE.
func (s *Tasks) ToggleStatus(ctx context.Context, id string) (models.Task, error) {
	task, err := s.Get(id)
	if err != nil {
		return models.Task{}, err
	}
	next := models.TaskStatusDone
	if task.Status == models.TaskStatusDone {
		next = models.TaskStatusTodo
	}
	return s.patch(ctx, id, map[string]any{"status": next})
}

// Edit updates a task's text, category, notes, or due date. Empty strings
// leave text and category unchanged; notes and due date are set verbatim
// when their pointer is non-nil so they can be cleared.
func (s *Tasks) Edit(ctx context.Context, id string, text, category string, notes, dueDate *string) (models.Task, error) {
	current, err := s.Get(id)
	if err != nil {
		return models.Task{}, err
	}

	next := current
	fields := make(map[string]any)
	if text != "" {
		next.Text = text
		fields["text"] = text
	}
	if category != "" {
		next.Category = category
		fields["category"] = category
	}
	if notes != nil {
		next.Notes = *notes
		fields["notes"] = *notes
	}
	if dueDate != nil {
		next.Date = *dueDate
		fields["date"] = *dueDate
	}
	if len(fields) == 0 {
		return current, nil
	}
	if err := validation.ValidateTask(next); err != nil {
		return models.Task{}, err
	}
	return s.patch(ctx, id, fields)
}

// SoftDelete moves a task to the trash, recording when.
func (s *Tasks) SoftDelete(ctx context.Context, id string) (models.Task, error) {
	if _, err := s.Get(id); err != nil {
		return models.Task{}, err
	}
	deletedAt := s.Now().UnixMilli()
	return s.patch(ctx, id, map[string]any{"deleted": true, "deletedAt": deletedAt})
}

// Restore brings a task back from the trash.
func (s *Tasks) Restore(ctx context.Context, id string) (models.Task, error) {
	if _, err := s.Get(id); err != nil {
		return models.Task{}, err
	}
	return s.patch(ctx, id, map[string]any{"deleted": false, "deletedAt": nil})
}

// Purge permanently erases a task record.
func (s *Tasks) Purge(ctx context.Context, id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.gw.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Tasks) patch(ctx context.Context, id string, fields map[string]any) (models.Task, error) {
	updated, err := s.gw.UpdateTask(ctx, id, fields)
	if err != nil {
		return models.Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = updated
			break
		}
	}
	return updated, nil
}
