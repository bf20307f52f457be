package service

import (
	"errors"
	"fmt"
)

// ErrCheckInNotAllowed rejects a toggle on a day outside the permitted
// horizon. The gateway is never contacted in that case.
var ErrCheckInNotAllowed = errors.New("check-in not permitted for that day")

// NotFoundError reports an operation referencing a record absent from the
// current snapshot.
type NotFoundError struct {
	Kind string // "habit" or "task"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ToggleError reports a failed check-in toggle. The local snapshot is
// guaranteed unchanged from before the toggle.
type ToggleError struct {
	HabitID string
	Date    string
	Err     error
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("toggle check-in for habit %s on %s: %v", e.HabitID, e.Date, e.Err)
}

func (e *ToggleError) Unwrap() error { return e.Err }
