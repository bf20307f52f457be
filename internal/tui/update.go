package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dayflow/internal/progress"
	"dayflow/internal/service"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("refresh failed: %v", msg.err)
			return m, nil
		}
		m.habitRows = msg.habits
		m.taskRows = msg.tasks
		m.clampCursor()
		return m, nil

	case toggledMsg:
		m.habitRows = msg.habits
		if msg.err != nil {
			m.status = toggleStatus(msg.err)
		} else {
			m.status = ""
		}
		return m, nil

	case taskChangedMsg:
		m.taskRows = msg.tasks
		m.clampCursor()
		if msg.err != nil {
			m.status = fmt.Sprintf("task update failed: %v", msg.err)
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.tab == TabHabits {
			m.tab = TabTasks
		} else {
			m.tab = TabHabits
		}
		m.cursor = 0
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.tab == TabHabits && m.dayCursor > 0 {
			m.dayCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.tab == TabHabits && m.dayCursor < progress.WindowSize-1 {
			m.dayCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()

	case key.Matches(msg, m.keys.Delete):
		if m.tab == TabTasks && m.cursor < len(m.taskRows) {
			return m, m.deleteTask(m.taskRows[m.cursor].ID)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleToggle() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabHabits:
		if m.cursor >= len(m.habitRows) {
			return m, nil
		}
		habit := m.habitRows[m.cursor]
		window := progress.DisplayWindow(habit, m.now())
		if m.dayCursor >= len(window) {
			return m, nil
		}
		day := window[m.dayCursor]
		if day.Disabled {
			m.status = fmt.Sprintf("%s is not open for check-in", day.Key)
			return m, nil
		}
		return m, m.toggleCheckIn(habit.ID, day.Key)

	case TabTasks:
		if m.cursor < len(m.taskRows) {
			return m, m.toggleTask(m.taskRows[m.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) rowCount() int {
	if m.tab == TabHabits {
		return len(m.habitRows)
	}
	return len(m.taskRows)
}

func (m *Model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func toggleStatus(err error) string {
	if errors.Is(err, service.ErrCheckInNotAllowed) {
		return "that day is not open for check-in"
	}
	var tErr *service.ToggleError
	if errors.As(err, &tErr) {
		return fmt.Sprintf("toggle for %s failed, reverted: %v", tErr.Date, tErr.Err)
	}
	return fmt.Sprintf("toggle failed: %v", err)
}
