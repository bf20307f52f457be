package models

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "TODO"
	TaskStatusDone TaskStatus = "DONE"
)

// DefaultCategories are the categories offered out of the box. Tasks may
// carry any category string; these only seed the picker.
var DefaultCategories = []string{"MyList", "Work", "Exercise", "Study"}

// Task is a categorized to-do item. Deleting a task is soft: Deleted is set
// and DeletedAt records the Unix-millisecond timestamp, so the task can be
// restored from the trash or purged permanently.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Category  string     `json:"category"`
	Status    TaskStatus `json:"status"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *int64     `json:"deletedAt"`
	Notes     string     `json:"notes,omitempty"`
	Date      string     `json:"date,omitempty"` // due date, YYYY-MM-DD
}
