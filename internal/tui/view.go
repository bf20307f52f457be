package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dayflow/internal/models"
	"dayflow/internal/progress"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.tab {
	case TabHabits:
		content = m.viewHabits()
	case TabTasks:
		content = m.viewTasks()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Tasks"} {
		if m.tab == Tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	if len(m.habitRows) == 0 {
		return faintStyle.Render("\n  No habits yet\n")
	}

	var b strings.Builder
	b.WriteString("\n")

	now := m.now()
	for i, h := range m.habitRows {
		window := progress.DisplayWindow(h, now)
		summary := progress.WeeklyProgress(window, h.CheckIns, h.Frequency)
		streak := progress.Streak(window, h.CheckIns)

		name := fmt.Sprintf("%-20s", truncate(h.Name, 20))
		if i == m.cursor {
			name = selectedStyle.Render(name)
		}

		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			name,
			m.renderWindow(window, h.CheckIns, i == m.cursor),
			faintStyle.Render(fmt.Sprintf("streak %d  %d/%d  %d%%",
				streak, summary.CheckedCount, summary.Goal, summary.Percentage)),
		))
	}

	if m.cursor < len(m.habitRows) {
		window := progress.DisplayWindow(m.habitRows[m.cursor], now)
		if m.dayCursor < len(window) {
			d := window[m.dayCursor]
			b.WriteString(faintStyle.Render(fmt.Sprintf("\n  %s %s\n", d.WeekdayLabel, d.Key)))
		}
	}

	return b.String()
}

func (m Model) renderWindow(window []progress.Day, checkIns []models.CheckIn, selected bool) string {
	byDate := make(map[string]models.CheckIn, len(checkIns))
	for _, ci := range checkIns {
		byDate[ci.Date] = ci
	}

	cells := make([]string, 0, len(window))
	for i, d := range window {
		var cell string
		switch {
		case d.Disabled:
			cell = disabledStyle.Render("·")
		case byDate[d.Key].IsChecked:
			cell = checkedStyle.Render("●")
		default:
			cell = missedStyle.Render("○")
		}
		if selected && i == m.dayCursor {
			cell = cursorCellStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}

func (m Model) viewTasks() string {
	if len(m.taskRows) == 0 {
		return faintStyle.Render("\n  No tasks\n")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, t := range m.taskRows {
		mark := "[ ]"
		if t.Status == models.TaskStatusDone {
			mark = checkedStyle.Render("[x]")
		}

		text := t.Text
		if i == m.cursor {
			text = selectedStyle.Render(text)
		}

		line := fmt.Sprintf("  %s %s %s", mark, text, faintStyle.Render("("+t.Category+")"))
		if t.Date != "" {
			line += faintStyle.Render("  due " + t.Date)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
