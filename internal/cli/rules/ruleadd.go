package rules

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

type RuleAddCmd struct {
	Title    string `arg:"" help:"Rule title."`
	Start    string `short:"s" help:"Planned start time (HH:MM)."`
	Finish   string `short:"f" help:"Planned finish time (HH:MM)."`
	Days     string `short:"w" help:"Comma-separated weekdays (mon,tue,... or 0-6 Monday-indexed). Empty = every day."`
	Priority string `short:"p" help:"Priority (P1-P4). Materialized tasks default to P2."`
}

func (c *RuleAddCmd) Validate() error {
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

func (c *RuleAddCmd) Run(ctx *cli.Context) error {
	days, err := cli.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	rule, err := ctx.Planner.UpsertRule(models.RecurringRule{
		Mode:          ctx.Mode,
		Title:         c.Title,
		PlannedStart:  c.Start,
		PlannedFinish: c.Finish,
		Days:          days,
		Priority:      models.Priority(c.Priority),
		Active:        true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added recurring rule %s: %s (%s)\n", cli.ShortID(rule.ID), rule.Title, cli.FormatWeekdays(rule.Days))
	return nil
}
