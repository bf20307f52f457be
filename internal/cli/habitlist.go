package cli

import (
	"context"
	"fmt"
	"strings"

	"dayflow/internal/models"
	"dayflow/internal/progress"
)

type HabitListCmd struct {
	Section string `short:"s" help:"Show only habits in a section."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Refresh(context.Background()); err != nil {
		return err
	}

	var filter models.Section
	if c.Section != "" {
		sec, err := parseSection(c.Section)
		if err != nil {
			return err
		}
		filter = sec
	}

	habits := ctx.Habits.All()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	now := ctx.Now()
	for _, section := range models.Sections {
		if filter != "" && section != filter {
			continue
		}

		var inSection []models.Habit
		for _, h := range habits {
			if h.Section == section {
				inSection = append(inSection, h)
			}
		}
		if len(inSection) == 0 {
			continue
		}

		fmt.Println(titleStyle.Render(string(section)))
		for _, h := range inSection {
			window := progress.DisplayWindow(h, now)
			summary := progress.WeeklyProgress(window, h.CheckIns, h.Frequency)
			streak := progress.Streak(window, h.CheckIns)

			fmt.Printf("  %-24s %s\n", h.Name, weekGrid(window, h.CheckIns))
			fmt.Printf("  %-24s %s  streak %d  (%d/%d this week)\n",
				"", progressBar(summary.Percentage, 14), streak, summary.CheckedCount, summary.Goal)
		}
		fmt.Println()
	}

	return nil
}

// weekGrid renders the trailing seven days, oldest first.
func weekGrid(window []progress.Day, checkIns []models.CheckIn) string {
	byDate := make(map[string]models.CheckIn, len(checkIns))
	for _, ci := range checkIns {
		byDate[ci.Date] = ci
	}

	cells := make([]string, 0, len(window))
	for _, d := range window {
		switch {
		case d.Disabled:
			cells = append(cells, faintStyle.Render("·"))
		case byDate[d.Key].IsChecked:
			cells = append(cells, checkedStyle.Render("●"))
		default:
			cells = append(cells, missedStyle.Render("○"))
		}
	}
	return strings.Join(cells, " ")
}
