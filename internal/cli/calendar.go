package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dayflow/internal/calendar"
	"dayflow/internal/utils"
)

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM), defaults to the current one."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Refresh(context.Background()); err != nil {
		return err
	}
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	month := ctx.Now()
	if c.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month, use YYYY-MM: %w", err)
		}
		month = parsed
	}

	events := calendar.MonthOf(
		calendar.Events(ctx.Tasks.All(""), ctx.Habits.All()),
		month,
	)

	fmt.Println(titleStyle.Render(month.Format("January 2006")))
	if len(events) == 0 {
		fmt.Println("  Nothing scheduled")
		return nil
	}

	byDay := calendar.ByDay(events)
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	today := utils.ToDayKey(ctx.Now())
	for _, day := range days {
		label := day
		if day == today {
			label = titleStyle.Render(day + " (today)")
		}
		fmt.Println(label)
		for _, ev := range byDay[day] {
			mark := "·"
			if ev.Kind == calendar.KindHabit {
				mark = checkedStyle.Render("●")
			} else if ev.Done {
				mark = checkedStyle.Render("✓")
			}
			fmt.Printf("  %s %s\n", mark, ev.Title)
		}
	}

	return nil
}
