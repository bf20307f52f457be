// Package service holds the client-side state synced with the resource
// server and is the only place that mutates it. The habit service owns
// check-in reconciliation: deciding create-vs-update for a toggle, merging
// server responses, and keeping the at-most-one-check-in-per-date invariant.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"dayflow/internal/gateway"
	"dayflow/internal/logger"
	"dayflow/internal/models"
	"dayflow/internal/progress"
	"dayflow/internal/validation"
)

// HabitGateway is the slice of the persistence gateway the habit service
// needs. *gateway.Client satisfies it.
type HabitGateway interface {
	ListHabits(ctx context.Context) ([]models.Habit, error)
	ListCheckIns(ctx context.Context) ([]models.CheckIn, error)
	CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error)
	UpdateHabit(ctx context.Context, id string, patch gateway.HabitPatch) (models.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	CreateCheckIn(ctx context.Context, habitID, date string, isChecked bool) (models.CheckIn, error)
	UpdateCheckIn(ctx context.Context, id string, isChecked bool) (models.CheckIn, error)
	DeleteCheckIn(ctx context.Context, id string) error
}

// Habits maintains the authoritative client-side habit snapshot. Reads hand
// out copies; writes replace whole entries, so a concurrent reader never
// observes a half-applied change. Mutations for a single habit are serialized
// by the caller awaiting each call; toggles on different habits may be in
// flight at once.
type Habits struct {
	gw HabitGateway

	// Now is the clock used for check-in gating. Tests override it.
	Now func() time.Time

	mu     sync.Mutex
	habits []models.Habit
	seq    map[string]uint64 // habitID+"\x00"+date -> latest toggle sequence
}

// NewHabits creates the habit service over the given gateway.
func NewHabits(gw HabitGateway) *Habits {
	return &Habits{
		gw:  gw,
		Now: time.Now,
		seq: make(map[string]uint64),
	}
}

// Refresh replaces the snapshot with the server's habits joined with their
// check-ins. Check-ins whose habitId is empty or matches no habit are
// dropped.
func (s *Habits) Refresh(ctx context.Context) error {
	habits, err := s.gw.ListHabits(ctx)
	if err != nil {
		return err
	}
	checkIns, err := s.gw.ListCheckIns(ctx)
	if err != nil {
		return err
	}

	byHabit := make(map[string][]models.CheckIn)
	for _, c := range checkIns {
		if c.HabitID == "" {
			continue
		}
		hid := c.HabitID
		c.HabitID = "" // the association is held by the habit after the join
		byHabit[hid] = append(byHabit[hid], c)
	}
	for i := range habits {
		habits[i].CheckIns = byHabit[habits[i].ID]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = habits
	return nil
}

// All returns a copy of every habit with its check-ins.
func (s *Habits) All() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyHabits(s.habits)
}

// Get returns a copy of one habit.
func (s *Habits) Get(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.habits {
		if h.ID == id {
			return copyHabit(h), nil
		}
	}
	return models.Habit{}, &NotFoundError{Kind: "habit", ID: id}
}

// ToggleCheckIn flips the check-in state for one habit on one day. A day
// with an existing record is negated via update; a day with none is created
// checked (first interaction always marks done). The snapshot only changes
// after the server confirms; on failure it is untouched and a *ToggleError
// is returned.
func (s *Habits) ToggleCheckIn(ctx context.Context, habitID, dayKey string) (models.CheckIn, error) {
	s.mu.Lock()
	habit, ok := s.findLocked(habitID)
	if !ok {
		s.mu.Unlock()
		return models.CheckIn{}, &NotFoundError{Kind: "habit", ID: habitID}
	}

	if !progress.IsCheckInAllowed(dayKey, habit, s.Now()) {
		s.mu.Unlock()
		return models.CheckIn{}, &ToggleError{HabitID: habitID, Date: dayKey, Err: ErrCheckInNotAllowed}
	}

	existing, hasExisting := habit.CheckInFor(dayKey)
	newState := true
	if hasExisting {
		newState = !existing.IsChecked
	}

	key := habitID + "\x00" + dayKey
	s.seq[key]++
	mySeq := s.seq[key]
	s.mu.Unlock()

	// The gateway call runs outside the lock so toggles on other habits
	// proceed independently.
	var (
		result models.CheckIn
		err    error
	)
	if hasExisting {
		result, err = s.gw.UpdateCheckIn(ctx, existing.ID, newState)
	} else {
		result, err = s.gw.CreateCheckIn(ctx, habitID, dayKey, newState)
	}
	if err != nil {
		logger.Error("check-in toggle failed", "habit", habitID, "date", dayKey, "error", err)
		return models.CheckIn{}, &ToggleError{HabitID: habitID, Date: dayKey, Err: err}
	}
	result.HabitID = ""

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[key] != mySeq {
		// A newer toggle for the same day already resolved; drop this
		// response so last-request-wins holds and the set never ends up
		// with two entries for one date.
		logger.Debug("dropping stale toggle response", "habit", habitID, "date", dayKey)
		if h, ok := s.findLocked(habitID); ok {
			if current, ok := h.CheckInFor(dayKey); ok {
				return current, nil
			}
		}
		return result, nil
	}

	s.mergeCheckInLocked(habitID, result, dayKey)
	return result, nil
}

// CreateHabit validates and persists a new habit, then adds it to the
// snapshot. The id is assigned here and immutable afterwards.
func (s *Habits) CreateHabit(ctx context.Context, name string, frequency int, section models.Section, startDate string) (models.Habit, error) {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Frequency: frequency,
		Section:   section,
		StartDate: startDate,
	}
	if err := validation.ValidateHabit(habit); err != nil {
		return models.Habit{}, err
	}

	created, err := s.gw.CreateHabit(ctx, habit)
	if err != nil {
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append(s.habits, created)
	return copyHabit(created), nil
}

// UpdateHabit changes a habit's name, goal, or section. The start date is
// immutable and not accepted here.
func (s *Habits) UpdateHabit(ctx context.Context, id string, patch gateway.HabitPatch) (models.Habit, error) {
	s.mu.Lock()
	current, ok := s.findLocked(id)
	s.mu.Unlock()
	if !ok {
		return models.Habit{}, &NotFoundError{Kind: "habit", ID: id}
	}

	next := current
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Frequency != nil {
		next.Frequency = *patch.Frequency
	}
	if patch.Section != nil {
		next.Section = *patch.Section
	}
	if err := validation.ValidateHabit(next); err != nil {
		return models.Habit{}, err
	}

	updated, err := s.gw.UpdateHabit(ctx, id, patch)
	if err != nil {
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			updated.CheckIns = s.habits[i].CheckIns
			s.habits[i] = updated
			return copyHabit(s.habits[i]), nil
		}
	}
	return updated, nil
}

// DeleteHabit removes a habit and every check-in referencing it. Check-in
// deletions run first as an unordered batch against the server's current
// records; if any fails the habit itself is kept so a retry can finish the
// cascade without orphans.
func (s *Habits) DeleteHabit(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.findLocked(id)
	s.mu.Unlock()
	if !ok {
		return &NotFoundError{Kind: "habit", ID: id}
	}

	// Refetch rather than trusting the snapshot: the cascade must cover
	// records this client has never seen.
	checkIns, err := s.gw.ListCheckIns(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, c := range checkIns {
		if c.HabitID != id {
			continue
		}
		if err := s.gw.DeleteCheckIn(ctx, c.ID); err != nil {
			logger.Error("cascade delete of check-in failed", "check_in", c.ID, "habit", id, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return firstErr
	}

	if err := s.gw.DeleteHabit(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			break
		}
	}
	return nil
}

// findLocked returns a copy of the habit; the caller holds s.mu.
func (s *Habits) findLocked(id string) (models.Habit, bool) {
	for _, h := range s.habits {
		if h.ID == id {
			return copyHabit(h), true
		}
	}
	return models.Habit{}, false
}

// mergeCheckInLocked inserts or replaces the habit's entry for date,
// rebuilding the slice so no two entries ever share a date.
func (s *Habits) mergeCheckInLocked(habitID string, c models.CheckIn, date string) {
	for i := range s.habits {
		if s.habits[i].ID != habitID {
			continue
		}
		merged := make([]models.CheckIn, 0, len(s.habits[i].CheckIns)+1)
		for _, existing := range s.habits[i].CheckIns {
			if existing.Date != date {
				merged = append(merged, existing)
			}
		}
		merged = append(merged, c)
		s.habits[i].CheckIns = merged
		return
	}
}

func copyHabit(h models.Habit) models.Habit {
	out := h
	out.CheckIns = append([]models.CheckIn(nil), h.CheckIns...)
	return out
}

func copyHabits(habits []models.Habit) []models.Habit {
	out := make([]models.Habit, len(habits))
	for i, h := range habits {
		out[i] = copyHabit(h)
	}
	return out
}
