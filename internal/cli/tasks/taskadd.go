package tasks

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Start    string `short:"s" help:"Planned start time (HH:MM)."`
	Finish   string `short:"f" help:"Planned finish time (HH:MM)."`
	Priority string `short:"p" help:"Priority (P1-P4)."`
	Note     string `short:"n" help:"Free-text note."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Start != "" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if c.Finish != "" && !utils.ValidateTimeFormat(c.Finish) {
		return fmt.Errorf("invalid finish time format (expected HH:MM): %s", c.Finish)
	}
	if !models.Priority(c.Priority).Valid() {
		return fmt.Errorf("priority must be one of P1-P4, got %s", c.Priority)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	task, err := ctx.Planner.UpsertTask(models.Task{
		Date:          date,
		Mode:          ctx.Mode,
		Title:         c.Title,
		PlannedStart:  c.Start,
		PlannedFinish: c.Finish,
		Priority:      models.Priority(c.Priority),
		Note:          c.Note,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s\n", cli.ShortID(task.ID), task.Title)
	return nil
}
