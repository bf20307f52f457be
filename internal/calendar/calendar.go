// Package calendar folds tasks and habit check-ins into one day-keyed event
// stream for the unified calendar view.
package calendar

import (
	"sort"
	"time"

	"dayflow/internal/models"
	"dayflow/internal/utils"
)

// EventKind distinguishes the two event sources.
type EventKind string

const (
	KindTask  EventKind = "task"
	KindHabit EventKind = "habit"
)

// Event is a single all-day calendar entry.
type Event struct {
	ID    string
	Title string
	Day   string // day key
	Kind  EventKind
	Done  bool // task DONE, or habit checked (always true for habits here)
}

// Events merges dated tasks and habit check-ins into a sorted event list.
// Soft-deleted and undated tasks are skipped. Only checked check-ins appear;
// an explicit unchecked record is not an event.
func Events(tasks []models.Task, habits []models.Habit) []Event {
	var events []Event

	for _, t := range tasks {
		if t.Deleted || t.Date == "" {
			continue
		}
		events = append(events, Event{
			ID:    t.ID,
			Title: t.Text,
			Day:   t.Date,
			Kind:  KindTask,
			Done:  t.Status == models.TaskStatusDone,
		})
	}

	for _, h := range habits {
		for _, c := range h.CheckIns {
			if !c.IsChecked {
				continue
			}
			events = append(events, Event{
				ID:    h.ID + "-" + c.ID,
				Title: h.Name,
				Day:   c.Date,
				Kind:  KindHabit,
				Done:  true,
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].Day != events[j].Day {
			return events[i].Day < events[j].Day
		}
		if events[i].Kind != events[j].Kind {
			return events[i].Kind == KindTask // tasks before habits within a day
		}
		return events[i].Title < events[j].Title
	})
	return events
}

// ByDay groups events under their day key.
func ByDay(events []Event) map[string][]Event {
	grouped := make(map[string][]Event)
	for _, e := range events {
		grouped[e.Day] = append(grouped[e.Day], e)
	}
	return grouped
}

// MonthOf returns the events falling inside the calendar month containing
// the given time.
func MonthOf(events []Event, t time.Time) []Event {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	from := utils.ToDayKey(first)
	to := utils.ToDayKey(first.AddDate(0, 1, -1))
	var out []Event
	for _, e := range events {
		if e.Day >= from && e.Day <= to {
			out = append(out, e)
		}
	}
	return out
}
