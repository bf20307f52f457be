package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

type HabitDeleteCmd struct {
	ID    string `arg:"" help:"Habit ID."`
	Force bool  `help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Refresh(context.Background()); err != nil {
		return err
	}

	habit, err := ctx.Habits.Get(c.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and all of its check-ins?", habit.Name)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := ctx.Habits.DeleteHabit(context.Background(), c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
