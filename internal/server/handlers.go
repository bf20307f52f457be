package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"dayflow/internal/logger"
	"dayflow/internal/models"
	"dayflow/internal/validation"
)

// --- habits ---

func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := s.habits.List()
	if err != nil {
		logger.Error("list habits", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list habits")
		return
	}
	writeJSON(w, http.StatusOK, habits)
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var habit models.Habit
	if err := json.NewDecoder(r.Body).Decode(&habit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	habit.CheckIns = nil
	if err := validation.ValidateHabit(habit); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.habits.Create(habit); err != nil {
		logger.Error("create habit", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create habit")
		return
	}
	writeJSON(w, http.StatusCreated, habit)
}

func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok, err := s.habits.Get(id)
	if err != nil {
		logger.Error("get habit", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get habit")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	var patch struct {
		Name      *string         `json:"name"`
		Frequency *int            `json:"frequency"`
		Section   *models.Section `json:"section"`
		StartDate *string         `json:"startDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Frequency != nil {
		existing.Frequency = *patch.Frequency
	}
	if patch.Section != nil {
		existing.Section = *patch.Section
	}
	if patch.StartDate != nil {
		existing.StartDate = *patch.StartDate
	}
	if err := validation.ValidateHabit(existing); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.habits.Update(existing); err != nil {
		logger.Error("update habit", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update habit")
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	_, ok, err := s.habits.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get habit")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}
	if err := s.habits.Delete(id); err != nil {
		logger.Error("delete habit", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete habit")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// --- check-ins ---

func (s *Server) listCheckIns(w http.ResponseWriter, r *http.Request) {
	checkIns, err := s.checkIns.List()
	if err != nil {
		logger.Error("list check-ins", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}
	writeJSON(w, http.StatusOK, checkIns)
}

func (s *Server) createCheckIn(w http.ResponseWriter, r *http.Request) {
	var c models.CheckIn
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if c.HabitID == "" {
		writeError(w, http.StatusBadRequest, "habitId is required")
		return
	}
	if c.Date == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	c.ID = uuid.New().String() // check-in ids are always server-assigned
	if err := s.checkIns.Create(c); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			writeError(w, http.StatusConflict, "check-in already exists for that habit and date")
			return
		}
		logger.Error("create check-in", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create check-in")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) updateCheckIn(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok, err := s.checkIns.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get check-in")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "check-in not found")
		return
	}

	var patch struct {
		IsChecked *bool `json:"isChecked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if patch.IsChecked == nil {
		writeError(w, http.StatusBadRequest, "isChecked is required")
		return
	}
	if err := s.checkIns.SetChecked(id, *patch.IsChecked); err != nil {
		logger.Error("update check-in", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update check-in")
		return
	}
	existing.IsChecked = *patch.IsChecked
	writeJSON(w, http.StatusOK, existing)
}

func (s *Server) deleteCheckIn(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	_, ok, err := s.checkIns.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get check-in")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "check-in not found")
		return
	}
	if err := s.checkIns.Delete(id); err != nil {
		logger.Error("delete check-in", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete check-in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// --- tasks ---

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List()
	if err != nil {
		logger.Error("list tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if err := validation.ValidateTask(task); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.tasks.Create(task); err != nil {
		logger.Error("create task", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok, err := s.tasks.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get task")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	// Raw fields so an explicit null (clearing deletedAt on restore) is
	// distinguishable from an absent key.
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := applyTaskPatch(&existing, fields); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validation.ValidateTask(existing); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.tasks.Update(existing); err != nil {
		logger.Error("update task", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

func applyTaskPatch(task *models.Task, fields map[string]json.RawMessage) error {
	for key, raw := range fields {
		var err error
		switch key {
		case "text":
			err = json.Unmarshal(raw, &task.Text)
		case "category":
			err = json.Unmarshal(raw, &task.Category)
		case "status":
			err = json.Unmarshal(raw, &task.Status)
		case "notes":
			err = json.Unmarshal(raw, &task.Notes)
		case "date":
			err = json.Unmarshal(raw, &task.Date)
		case "deleted":
			err = json.Unmarshal(raw, &task.Deleted)
		case "deletedAt":
			if string(raw) == "null" {
				task.DeletedAt = nil
			} else {
				var ts int64
				if err = json.Unmarshal(raw, &ts); err == nil {
					task.DeletedAt = &ts
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	_, ok, err := s.tasks.Get(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get task")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	if err := s.tasks.Delete(id); err != nil {
		logger.Error("delete task", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
