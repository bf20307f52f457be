package store

import (
	"database/sql"
	"fmt"

	"dayflow/internal/models"
)

// CheckInStore persists check-in records. The (habit_id, date) uniqueness
// constraint backs the one-check-in-per-day invariant on the server side.
type CheckInStore struct {
	db *sql.DB
}

func NewCheckInStore(db *sql.DB) *CheckInStore {
	return &CheckInStore{db: db}
}

const checkInCols = `id, habit_id, date, is_checked`

func scanCheckIn(scanner interface{ Scan(...any) error }) (models.CheckIn, error) {
	var c models.CheckIn
	var checked int
	err := scanner.Scan(&c.ID, &c.HabitID, &c.Date, &checked)
	c.IsChecked = checked != 0
	return c, err
}

// List returns all check-ins across all habits.
func (s *CheckInStore) List() ([]models.CheckIn, error) {
	rows, err := s.db.Query(`SELECT ` + checkInCols + ` FROM check_ins ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := []models.CheckIn{}
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, rows.Err()
}

// Get returns one check-in, or (zero, false, nil) when the id is unknown.
func (s *CheckInStore) Get(id string) (models.CheckIn, bool, error) {
	row := s.db.QueryRow(`SELECT `+checkInCols+` FROM check_ins WHERE id = ?`, id)
	c, err := scanCheckIn(row)
	if err == sql.ErrNoRows {
		return models.CheckIn{}, false, nil
	}
	if err != nil {
		return models.CheckIn{}, false, fmt.Errorf("get check-in: %w", err)
	}
	return c, true, nil
}

// Create inserts a check-in record.
func (s *CheckInStore) Create(c models.CheckIn) error {
	checked := 0
	if c.IsChecked {
		checked = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO check_ins (id, habit_id, date, is_checked) VALUES (?, ?, ?, ?)`,
		c.ID, c.HabitID, c.Date, checked,
	)
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	return nil
}

// SetChecked updates a check-in's checked state.
func (s *CheckInStore) SetChecked(id string, isChecked bool) error {
	checked := 0
	if isChecked {
		checked = 1
	}
	if _, err := s.db.Exec(`UPDATE check_ins SET is_checked = ? WHERE id = ?`, checked, id); err != nil {
		return fmt.Errorf("update check-in: %w", err)
	}
	return nil
}

// Delete removes a check-in record.
func (s *CheckInStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM check_ins WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete check-in: %w", err)
	}
	return nil
}
