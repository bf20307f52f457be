package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"dayflow/internal/models"
	"dayflow/internal/progress"
)

type HabitAddCmd struct {
	Name      string `arg:"" optional:"" help:"Habit name."`
	Frequency int    `short:"f" help:"Weekly goal (check-ins per week, 1-7)." default:"7"`
	Section   string `short:"s" help:"Section (morning|afternoon|evening|others)." default:"Others"`
	Start     string `help:"Start date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitAddCmd) Validate() error {
	if c.Frequency < 1 || c.Frequency > progress.WindowSize {
		return fmt.Errorf("frequency must be between 1 and %d", progress.WindowSize)
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Refresh(context.Background()); err != nil {
		return err
	}

	name := c.Name
	section, err := parseSection(c.Section)
	if err != nil {
		return err
	}
	frequency := c.Frequency

	// No name argument drops into the interactive form.
	if name == "" {
		if err := habitForm(&name, &frequency, &section); err != nil {
			return err
		}
	}

	startDate, err := resolveDay(c.Start, ctx.Now())
	if err != nil {
		return err
	}

	habit, err := ctx.Habits.CreateHabit(context.Background(), name, frequency, section, startDate)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

func habitForm(name *string, frequency *int, section *models.Section) error {
	freqStr := strconv.Itoa(*frequency)
	sectionStr := string(*section)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Weekly goal").
				Options(
					huh.NewOption("1 day a week", "1"),
					huh.NewOption("2 days a week", "2"),
					huh.NewOption("3 days a week", "3"),
					huh.NewOption("4 days a week", "4"),
					huh.NewOption("5 days a week", "5"),
					huh.NewOption("6 days a week", "6"),
					huh.NewOption("Every day", "7"),
				).
				Value(&freqStr),
			huh.NewSelect[string]().
				Title("Section").
				Options(
					huh.NewOption("Morning", string(models.SectionMorning)),
					huh.NewOption("Afternoon", string(models.SectionAfternoon)),
					huh.NewOption("Evening", string(models.SectionEvening)),
					huh.NewOption("Others", string(models.SectionOthers)),
				).
				Value(&sectionStr),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	f, err := strconv.Atoi(freqStr)
	if err != nil {
		return fmt.Errorf("invalid frequency: %w", err)
	}
	*frequency = f
	*section = models.Section(sectionStr)
	return nil
}
