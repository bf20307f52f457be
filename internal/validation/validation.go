// Package validation checks habit and task fields at the input boundary,
// before anything reaches the persistence gateway.
package validation

import (
	"fmt"
	"strings"

	"dayflow/internal/models"
	"dayflow/internal/progress"
	"dayflow/internal/utils"
)

// FieldError reports a single invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateHabit checks a habit before create or update.
func ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if h.Frequency < 1 || h.Frequency > progress.WindowSize {
		return &FieldError{Field: "frequency", Reason: fmt.Sprintf("must be between 1 and %d times per week", progress.WindowSize)}
	}
	if !h.Section.Valid() {
		return &FieldError{Field: "section", Reason: fmt.Sprintf("must be one of %v", models.Sections)}
	}
	if _, err := utils.FromDayKey(h.StartDate); err != nil {
		return &FieldError{Field: "startDate", Reason: err.Error()}
	}
	return nil
}

// ValidateTask checks a task before create or update.
func ValidateTask(t models.Task) error {
	if strings.TrimSpace(t.Text) == "" {
		return &FieldError{Field: "text", Reason: "must not be empty"}
	}
	if strings.TrimSpace(t.Category) == "" {
		return &FieldError{Field: "category", Reason: "must not be empty"}
	}
	if t.Status != models.TaskStatusTodo && t.Status != models.TaskStatusDone {
		return &FieldError{Field: "status", Reason: "must be TODO or DONE"}
	}
	if t.Date != "" {
		if _, err := utils.FromDayKey(t.Date); err != nil {
			return &FieldError{Field: "date", Reason: err.Error()}
		}
	}
	return nil
}
