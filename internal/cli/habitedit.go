package cli

import (
	"context"
	"fmt"

	"dayflow/internal/gateway"
	"dayflow/internal/progress"
)

type HabitEditCmd struct {
	ID        string `arg:"" help:"Habit ID."`
	Name      string `short:"n" help:"New name."`
	Frequency int    `short:"f" help:"New weekly goal (1-7)."`
	Section   string `short:"s" help:"New section (morning|afternoon|evening|others)."`
}

func (c *HabitEditCmd) Validate() error {
	if c.Frequency != 0 && (c.Frequency < 1 || c.Frequency > progress.WindowSize) {
		return fmt.Errorf("frequency must be between 1 and %d", progress.WindowSize)
	}
	return nil
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Refresh(context.Background()); err != nil {
		return err
	}

	var patch gateway.HabitPatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Frequency != 0 {
		patch.Frequency = &c.Frequency
	}
	if c.Section != "" {
		sec, err := parseSection(c.Section)
		if err != nil {
			return err
		}
		patch.Section = &sec
	}
	if patch.Name == nil && patch.Frequency == nil && patch.Section == nil {
		return fmt.Errorf("nothing to change, pass --name, --frequency, or --section")
	}

	habit, err := ctx.Habits.UpdateHabit(context.Background(), c.ID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}
