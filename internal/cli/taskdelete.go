package cli

import (
	"context"
	"fmt"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

// Deletion moves the task to the trash; "task purge" removes it for good.
func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	task, err := ctx.Tasks.SoftDelete(context.Background(), c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Moved to trash: %s\n", task.Text)
	return nil
}
