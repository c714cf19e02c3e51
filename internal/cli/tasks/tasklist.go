package tasks

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/planner"
)

type TaskListCmd struct {
	Date string `arg:"" optional:"" help:"Date to list (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	tasks, err := ctx.Planner.ListTasks(date, ctx.Mode)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Printf("No tasks for %s.\n", date)
		return nil
	}

	for _, t := range planner.SortTasksChronologically(tasks) {
		check := " "
		if t.Done {
			check = "x"
		}
		timeCol := "     "
		if t.Timed() {
			timeCol = t.PlannedStart
		}
		fmt.Printf("%s  [%s] %-40s %s\n", timeCol, check, t.Title, cli.ShortID(t.ID))
	}
	return nil
}
