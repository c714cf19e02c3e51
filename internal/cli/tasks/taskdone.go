package tasks

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
)

// TaskDoneCmd toggles a task's done state. Toggling a habit-sourced task
// also records the habit log for that day.
type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := FindTask(ctx, c.ID)
	if err != nil {
		return err
	}

	updated, err := ctx.Planner.ToggleTaskDone(task.ID)
	if err != nil {
		return err
	}

	state := "not done"
	if updated.Done {
		state = "done"
	}
	fmt.Printf("Marked %s as %s\n", updated.Title, state)
	return nil
}
