package tasks

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

type TaskEditCmd struct {
	ID       string `arg:"" help:"Task id (or unique prefix)."`
	Title    string `short:"t" help:"New title."`
	Date     string `short:"d" help:"Move to date (YYYY-MM-DD)."`
	Start    string `short:"s" help:"Planned start time (HH:MM, or 'none' to clear)."`
	Finish   string `short:"f" help:"Planned finish time (HH:MM, or 'none' to clear)."`
	Priority string `short:"p" help:"Priority (P1-P4)."`
	Note     string `short:"n" help:"Free-text note."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Start != "" && c.Start != "none" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if c.Finish != "" && c.Finish != "none" && !utils.ValidateTimeFormat(c.Finish) {
		return fmt.Errorf("invalid finish time format (expected HH:MM): %s", c.Finish)
	}
	if !models.Priority(c.Priority).Valid() {
		return fmt.Errorf("priority must be one of P1-P4, got %s", c.Priority)
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := FindTask(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		task.Title = c.Title
	}
	if c.Date != "" {
		date, err := cli.ResolveDate(c.Date)
		if err != nil {
			return err
		}
		task.Date = date
	}
	switch c.Start {
	case "":
	case "none":
		task.PlannedStart = ""
	default:
		task.PlannedStart = c.Start
	}
	switch c.Finish {
	case "":
	case "none":
		task.PlannedFinish = ""
	default:
		task.PlannedFinish = c.Finish
	}
	if c.Priority != "" {
		task.Priority = models.Priority(c.Priority)
	}
	if c.Note != "" {
		task.Note = c.Note
	}

	updated, err := ctx.Planner.UpsertTask(task)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task %s: %s\n", cli.ShortID(updated.ID), updated.Title)
	return nil
}
