package cli

import (
	"context"
	"fmt"
	"time"
)

type TrashListCmd struct{}

func (c *TrashListCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	tasks := ctx.Tasks.Trash()
	if len(tasks) == 0 {
		fmt.Println("Trash is empty")
		return nil
	}

	fmt.Println(titleStyle.Render("Trash"))
	for _, t := range tasks {
		when := ""
		if t.DeletedAt != nil {
			when = time.UnixMilli(*t.DeletedAt).Format("2006-01-02 15:04")
		}
		fmt.Printf("  %s  %s %s\n", t.Text, faintStyle.Render(t.ID), faintStyle.Render(when))
	}
	return nil
}

type TrashRestoreCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TrashRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	task, err := ctx.Tasks.Restore(context.Background(), c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Restored: %s\n", task.Text)
	return nil
}

type TrashPurgeCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TrashPurgeCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	task, err := ctx.Tasks.Get(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Tasks.Purge(context.Background(), c.ID); err != nil {
		return err
	}

	fmt.Printf("Permanently deleted: %s\n", task.Text)
	return nil
}
