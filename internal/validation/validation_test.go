package validation

import (
	"strings"
	"testing"

	"dayflow/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:        "h1",
		Name:      "Stretch",
		Frequency: 3,
		Section:   models.SectionMorning,
		StartDate: "2025-03-01",
	}
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Habit)
		wantField string
	}{
		{"valid", func(h *models.Habit) {}, ""},
		{"empty name", func(h *models.Habit) { h.Name = "  " }, "name"},
		{"zero frequency", func(h *models.Habit) { h.Frequency = 0 }, "frequency"},
		{"frequency above seven", func(h *models.Habit) { h.Frequency = 8 }, "frequency"},
		{"unknown section", func(h *models.Habit) { h.Section = "Night" }, "section"},
		{"bad start date", func(h *models.Habit) { h.StartDate = "01-03-2025" }, "startDate"},
		{"impossible start date", func(h *models.Habit) { h.StartDate = "2025-02-30" }, "startDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHabit()
			tt.mutate(&h)
			err := ValidateHabit(h)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateHabit returned %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateHabit returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not mention field %q", err, tt.wantField)
			}
		})
	}
}

func TestValidateTask(t *testing.T) {
	base := models.Task{ID: "t1", Text: "Buy milk", Category: "MyList", Status: models.TaskStatusTodo}

	tests := []struct {
		name      string
		mutate    func(*models.Task)
		wantField string
	}{
		{"valid", func(t *models.Task) {}, ""},
		{"valid with due date", func(t *models.Task) { t.Date = "2025-06-01" }, ""},
		{"empty text", func(t *models.Task) { t.Text = "" }, "text"},
		{"empty category", func(t *models.Task) { t.Category = " " }, "category"},
		{"bad status", func(t *models.Task) { t.Status = "OPEN" }, "status"},
		{"bad due date", func(t *models.Task) { t.Date = "June 1st" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := base
			tt.mutate(&task)
			err := ValidateTask(task)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateTask returned %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateTask returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not mention field %q", err, tt.wantField)
			}
		})
	}
}
