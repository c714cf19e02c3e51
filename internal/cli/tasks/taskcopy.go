package tasks

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
)

// TaskCopyCmd copies one day's tasks to another day. Copies become plain
// manual tasks: fresh ids, done state and actual times cleared, source
// links dropped.
type TaskCopyCmd struct {
	From       string `arg:"" optional:"" help:"Source date (YYYY-MM-DD or 'yesterday')." default:"yesterday"`
	To         string `arg:"" optional:"" help:"Target date (YYYY-MM-DD or 'today')." default:"today"`
	OnlyUndone bool   `short:"u" help:"Copy only tasks that are not done."`
}

func (c *TaskCopyCmd) Run(ctx *cli.Context) error {
	from, err := cli.ResolveDate(c.From)
	if err != nil {
		return err
	}
	to, err := cli.ResolveDate(c.To)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("source and target dates are the same: %s", from)
	}

	copied, err := ctx.Planner.CopyTasks(from, to, ctx.Mode, c.OnlyUndone)
	if err != nil {
		return err
	}
	fmt.Printf("Copied %d task(s) from %s to %s\n", copied, from, to)
	return nil
}
