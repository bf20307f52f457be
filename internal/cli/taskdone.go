package cli

import (
	"context"
	"fmt"

	"dayflow/internal/models"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	if err := ctx.Tasks.Refresh(context.Background()); err != nil {
		return err
	}

	task, err := ctx.Tasks.ToggleStatus(context.Background(), c.ID)
	if err != nil {
		return err
	}

	if task.Status == models.TaskStatusDone {
		fmt.Printf("Done: %s\n", task.Text)
	} else {
		fmt.Printf("Reopened: %s\n", task.Text)
	}
	return nil
}
