package store

import (
	"database/sql"
	"fmt"

	"dayflow/internal/models"
)

// TaskStore persists task records, soft-deleted ones included.
type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

const taskCols = `id, text, category, status, deleted, deleted_at, notes, date`

func scanTask(scanner interface{ Scan(...any) error }) (models.Task, error) {
	var t models.Task
	var deleted int
	var deletedAt sql.NullInt64
	var date sql.NullString
	err := scanner.Scan(&t.ID, &t.Text, &t.Category, &t.Status, &deleted, &deletedAt, &t.Notes, &date)
	if err != nil {
		return t, err
	}
	t.Deleted = deleted != 0
	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.Int64
	}
	if date.Valid {
		t.Date = date.String
	}
	return t, nil
}

// List returns every task, trash included; filtering is the client's
// concern.
func (s *TaskStore) List() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskCols + ` FROM tasks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Get returns one task, or (zero, false, nil) when the id is unknown.
func (s *TaskStore) Get(id string) (models.Task, bool, error) {
	row := s.db.QueryRow(`SELECT `+taskCols+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, fmt.Errorf("get task: %w", err)
	}
	return t, true, nil
}

// Create inserts a task record.
func (s *TaskStore) Create(t models.Task) error {
	_, err := s.db.Exec(
		`INSERT INTO tasks (id, text, category, status, deleted, deleted_at, notes, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Text, t.Category, t.Status, boolToInt(t.Deleted), nullableInt64(t.DeletedAt), t.Notes, nullableString(t.Date),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Update replaces a task record.
func (s *TaskStore) Update(t models.Task) error {
	_, err := s.db.Exec(
		`UPDATE tasks SET text = ?, category = ?, status = ?, deleted = ?, deleted_at = ?, notes = ?, date = ? WHERE id = ?`,
		t.Text, t.Category, t.Status, boolToInt(t.Deleted), nullableInt64(t.DeletedAt), t.Notes, nullableString(t.Date), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete permanently removes a task record.
func (s *TaskStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
