package cli

import (
	"context"
	"fmt"

	"dayflow/internal/models"
)

type TaskListCmd struct {
	Category string `short:"c" help:"Show only one category (defaults to the saved selection)."`
	All      bool   `short:"a" help:"Show every category."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	category := c.Category
	if category == "" && !c.All {
		p, err := ctx.Prefs.Load()
		if err != nil {
			return err
		}
		category = p.SelectedCategory
	}
	if c.All {
		category = ""
	}

	tasks := ctx.Tasks.All(category)
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	if category != "" {
		fmt.Println(titleStyle.Render(category))
	}
	for _, t := range tasks {
		mark := "[ ]"
		if t.Status == models.TaskStatusDone {
			mark = checkedStyle.Render("[x]")
		}

		line := fmt.Sprintf("  %s %s", mark, t.Text)
		if c.All {
			line += faintStyle.Render(fmt.Sprintf("  (%s)", t.Category))
		}
		if t.Date != "" {
			line += faintStyle.Render("  due " + t.Date)
		}
		fmt.Println(line)

		if t.Notes != "" {
			fmt.Printf("      %s\n", faintStyle.Render(t.Notes))
		}
	}

	return nil
}
