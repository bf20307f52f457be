package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"dayflow/internal/models"
	"dayflow/internal/prefs"
	"dayflow/internal/service"
	"dayflow/internal/utils"
)

type Context struct {
	Habits *service.Habits
	Tasks  *service.Tasks
	Prefs  *prefs.Store
	Now    func() time.Time
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// resolveDay turns a user-supplied date argument into a day key.
// "today" and the empty string mean the current local day.
func resolveDay(arg string, now time.Time) (string, error) {
	if arg == "" || arg == "today" {
		return utils.ToDayKey(now), nil
	}
	if _, err := utils.FromDayKey(arg); err != nil {
		return "", fmt.Errorf("invalid date, use YYYY-MM-DD or 'today': %w", err)
	}
	return arg, nil
}

func parseSection(s string) (models.Section, error) {
	for _, sec := range models.Sections {
		if strings.EqualFold(s, string(sec)) {
			return sec, nil
		}
	}
	return "", fmt.Errorf("invalid section %q (morning|afternoon|evening|others)", s)
}

// progressBar renders a fixed-width bar. The visual fill is clamped at 100%
// but the printed percentage is the true value, which can exceed 100 when a
// habit is checked more often than its weekly goal.
func progressBar(percentage int, width int) string {
	shown := percentage
	if shown > 100 {
		shown = 100
	}
	if shown < 0 {
		shown = 0
	}
	filled := shown * width / 100
	bar := barFillStyle.Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d%%", bar, percentage)
}
