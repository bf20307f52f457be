package cli

import (
	"context"
	"fmt"
)

type TaskEditCmd struct {
	ID       string `arg:"" help:"Task ID."`
	Text     string `short:"t" help:"New text."`
	Category string `short:"c" help:"New category."`
	Notes    string `short:"n" help:"New notes ('-' clears them)."`
	Due      string `short:"d" help:"New due date ('-' clears it)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	var notes, due *string
	if c.Notes != "" {
		v := c.Notes
		if v == "-" {
			v = ""
		}
		notes = &v
	}
	if c.Due != "" {
		v := c.Due
		if v == "-" {
			v = ""
		} else {
			resolved, err := resolveDay(v, ctx.Now())
			if err != nil {
				return err
			}
			v = resolved
		}
		due = &v
	}

	if c.Text == "" && c.Category == "" && notes == nil && due == nil {
		return fmt.Errorf("nothing to change, pass --text, --category, --notes, or --due")
	}

	task, err := ctx.Tasks.Edit(context.Background(), c.ID, c.Text, c.Category, notes, due)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", task.Text)
	return nil
}
