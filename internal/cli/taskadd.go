package cli

import (
	"context"
	"fmt"
)

type TaskAddCmd struct {
	Text     string `arg:"" help:"Task text."`
	Category string `short:"c" help:"Category." default:"MyList"`
	Notes    string `short:"n" help:"Notes."`
	Due      string `short:"d" help:"Due date (YYYY-MM-DD or 'today')."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	due := ""
	if c.Due != "" {
		resolved, err := resolveDay(c.Due, ctx.Now())
		if err != nil {
			return err
		}
		due = resolved
	}

	task, err := ctx.Tasks.Add(context.Background(), c.Text, c.Category, c.Notes, due)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Text, task.ID)
	return nil
}
