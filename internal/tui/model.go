package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"dayflow/internal/models"
	"dayflow/internal/progress"
	"dayflow/internal/service"
)

type Tab int

const (
	TabHabits Tab = iota
	TabTasks
)

type Model struct {
	habits *service.Habits
	tasks  *service.Tasks
	now    func() time.Time

	tab       Tab
	keys      KeyMap
	help      help.Model
	habitRows []models.Habit
	taskRows  []models.Task
	cursor    int
	dayCursor int // index into the seven-day window, rightmost is today
	status    string
	width     int
	height    int
	quitting  bool
}

func NewModel(habits *service.Habits, tasks *service.Tasks, now func() time.Time) Model {
	return Model{
		habits:    habits,
		tasks:     tasks,
		now:       now,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		dayCursor: progress.WindowSize - 1,
	}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

type refreshedMsg struct {
	habits []models.Habit
	tasks  []models.Task
	err    error
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.habits.Refresh(ctx); err != nil {
			return refreshedMsg{err: err}
		}
		if err := m.tasks.Refresh(ctx); err != nil {
			return refreshedMsg{err: err}
		}
		return refreshedMsg{habits: m.habits.All(), tasks: m.tasks.All("")}
	}
}

type toggledMsg struct {
	habits []models.Habit
	err    error
}

func (m Model) toggleCheckIn(habitID, dayKey string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.habits.ToggleCheckIn(context.Background(), habitID, dayKey)
		// The snapshot is authoritative either way: on failure it still
		// holds the pre-toggle state, which reverts the board.
		return toggledMsg{habits: m.habits.All(), err: err}
	}
}

type taskChangedMsg struct {
	tasks []models.Task
	err   error
}

func (m Model) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.tasks.ToggleStatus(context.Background(), id)
		return taskChangedMsg{tasks: m.tasks.All(""), err: err}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.tasks.SoftDelete(context.Background(), id)
		return taskChangedMsg{tasks: m.tasks.All(""), err: err}
	}
}
