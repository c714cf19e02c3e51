package tasks

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := FindTask(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Planner.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}
