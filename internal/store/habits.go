package store

import (
	"database/sql"
	"fmt"

	"dayflow/internal/models"
)

// HabitStore persists habit records.
type HabitStore struct {
	db *sql.DB
}

func NewHabitStore(db *sql.DB) *HabitStore {
	return &HabitStore{db: db}
}

const habitCols = `id, name, frequency, section, start_date`

func scanHabit(scanner interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	err := scanner.Scan(&h.ID, &h.Name, &h.Frequency, &h.Section, &h.StartDate)
	return h, err
}

// List returns all habits, without check-ins.
func (s *HabitStore) List() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT ` + habitCols + ` FROM habits ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// Get returns one habit, or (zero, nil) when the id is unknown.
func (s *HabitStore) Get(id string) (models.Habit, bool, error) {
	row := s.db.QueryRow(`SELECT `+habitCols+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return models.Habit{}, false, nil
	}
	if err != nil {
		return models.Habit{}, false, fmt.Errorf("get habit: %w", err)
	}
	return h, true, nil
}

// Create inserts a habit record.
func (s *HabitStore) Create(h models.Habit) error {
	_, err := s.db.Exec(
		`INSERT INTO habits (id, name, frequency, section, start_date) VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Frequency, h.Section, h.StartDate,
	)
	if err != nil {
		return fmt.Errorf("insert habit: %w", err)
	}
	return nil
}

// Update replaces a habit's mutable fields.
func (s *HabitStore) Update(h models.Habit) error {
	_, err := s.db.Exec(
		`UPDATE habits SET name = ?, frequency = ?, section = ?, start_date = ? WHERE id = ?`,
		h.Name, h.Frequency, h.Section, h.StartDate, h.ID,
	)
	if err != nil {
		return fmt.Errorf("update habit: %w", err)
	}
	return nil
}

// Delete removes a habit record. Check-ins are a separate collection and
// deleted by the client's cascade.
func (s *HabitStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}
