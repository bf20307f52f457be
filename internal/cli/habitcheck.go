package cli

import (
	"context"
	"errors"
	"fmt"

	"dayflow/internal/service"
)

type HabitCheckCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `arg:"" optional:"" help:"Day to toggle (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitCheckCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Refresh(context.Background()); err != nil {
		return err
	}

	day, err := resolveDay(c.Date, ctx.Now())
	if err != nil {
		return err
	}

	checkIn, err := ctx.Habits.ToggleCheckIn(context.Background(), c.ID, day)
	if err != nil {
		if errors.Is(err, service.ErrCheckInNotAllowed) {
			return fmt.Errorf("%s is not open for check-in (future day or before the habit started)", day)
		}
		return err
	}

	if checkIn.IsChecked {
		fmt.Printf("Checked in for %s\n", day)
	} else {
		fmt.Printf("Unchecked %s\n", day)
	}
	return nil
}
