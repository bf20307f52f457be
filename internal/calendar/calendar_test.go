package calendar

import (
	"testing"
	"time"

	"dayflow/internal/models"
)

func sampleData() ([]models.Task, []models.Habit) {
	deletedAt := int64(1700000000000)
	tasks := []models.Task{
		{ID: "t1", Text: "Dentist", Category: "MyList", Status: models.TaskStatusTodo, Date: "2025-03-10"},
		{ID: "t2", Text: "Report", Category: "Work", Status: models.TaskStatusDone, Date: "2025-03-10"},
		{ID: "t3", Text: "No date", Category: "Work", Status: models.TaskStatusTodo},
		{ID: "t4", Text: "Trashed", Category: "Work", Status: models.TaskStatusTodo, Date: "2025-03-11", Deleted: true, DeletedAt: &deletedAt},
	}
	habits := []models.Habit{
		{ID: "h1", Name: "Run", Frequency: 3, CheckIns: []models.CheckIn{
			{ID: "c1", Date: "2025-03-10", IsChecked: true},
			{ID: "c2", Date: "2025-03-11", IsChecked: false}, // explicit miss, not an event
			{ID: "c3", Date: "2025-04-01", IsChecked: true},
		}},
	}
	return tasks, habits
}

func TestEvents_MergesAndFilters(t *testing.T) {
	tasks, habits := sampleData()
	events := Events(tasks, habits)

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4: %+v", len(events), events)
	}
	for _, e := range events {
		if e.ID == "t3" {
			t.Error("undated task became an event")
		}
		if e.ID == "t4" {
			t.Error("soft-deleted task became an event")
		}
		if e.ID == "h1-c2" {
			t.Error("unchecked check-in became an event")
		}
	}
}

func TestEvents_SortedByDayThenKind(t *testing.T) {
	tasks, habits := sampleData()
	events := Events(tasks, habits)

	for i := 1; i < len(events); i++ {
		if events[i].Day < events[i-1].Day {
			t.Fatalf("events out of order: %s before %s", events[i-1].Day, events[i].Day)
		}
	}
	// Within 2025-03-10: tasks first, then the habit.
	if events[0].Kind != KindTask || events[2].Kind != KindHabit {
		t.Errorf("kind ordering wrong: %+v", events[:3])
	}
}

func TestByDay(t *testing.T) {
	tasks, habits := sampleData()
	grouped := ByDay(Events(tasks, habits))

	if len(grouped["2025-03-10"]) != 3 {
		t.Errorf("2025-03-10 has %d events, want 3", len(grouped["2025-03-10"]))
	}
	if len(grouped["2025-03-11"]) != 0 {
		t.Errorf("2025-03-11 should have no events, got %+v", grouped["2025-03-11"])
	}
}

func TestMonthOf(t *testing.T) {
	tasks, habits := sampleData()
	events := Events(tasks, habits)

	march := MonthOf(events, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))
	for _, e := range march {
		if e.Day < "2025-03-01" || e.Day > "2025-03-31" {
			t.Errorf("event %s outside March: %s", e.ID, e.Day)
		}
	}
	if len(march) != 3 {
		t.Errorf("March has %d events, want 3", len(march))
	}

	april := MonthOf(events, time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local))
	if len(april) != 1 || april[0].ID != "h1-c3" {
		t.Errorf("April events = %+v, want just the April check-in", april)
	}
}
