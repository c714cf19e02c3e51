package rules

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

// RuleEditCmd edits a recurring rule. Changes are not retroactive: tasks
// already materialized from the rule keep their old values.
type RuleEditCmd struct {
	ID       string `arg:"" help:"Rule id."`
	Title    string `short:"t" help:"New title."`
	Start    string `short:"s" help:"Planned start time (HH:MM, or 'none' to clear)."`
	Finish   string `short:"f" help:"Planned finish time (HH:MM, or 'none' to clear)."`
	Days     string `short:"w" help:"Comma-separated weekdays ('all' for every day)."`
	Priority string `short:"p" help:"Priority (P1-P4)."`
}

func (c *RuleEditCmd) Validate() error {
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

func (c *RuleEditCmd) Run(ctx *cli.Context) error {
	rule, err := ctx.Planner.GetRule(c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		rule.Title = c.Title
	}
	switch c.Start {
	case "":
	case "none":
		rule.PlannedStart = ""
	default:
		rule.PlannedStart = c.Start
	}
	switch c.Finish {
	case "":
	case "none":
		rule.PlannedFinish = ""
	default:
		rule.PlannedFinish = c.Finish
	}
	switch c.Days {
	case "":
	case "all":
		rule.Days = nil
	default:
		days, err := cli.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		rule.Days = days
	}
	if c.Priority != "" {
		rule.Priority = models.Priority(c.Priority)
	}

	updated, err := ctx.Planner.UpsertRule(rule)
	if err != nil {
		return err
	}
	fmt.Printf("Updated rule %s: %s\n", cli.ShortID(updated.ID), updated.Title)
	return nil
}

// RuleToggleCmd flips a rule between active and inactive. Inactive rules
// stop producing tasks on future days.
type RuleToggleCmd struct {
	ID string `arg:"" help:"Rule id."`
}

func (c *RuleToggleCmd) Run(ctx *cli.Context) error {
	rule, err := ctx.Planner.GetRule(c.ID)
	if err != nil {
		return err
	}

	rule.Active = !rule.Active
	updated, err := ctx.Planner.UpsertRule(rule)
	if err != nil {
		return err
	}

	state := "inactive"
	if updated.Active {
		state = "active"
	}
	fmt.Printf("Rule %s is now %s\n", updated.Title, state)
	return nil
}

type RuleDeleteCmd struct {
	ID string `arg:"" help:"Rule id."`
}

func (c *RuleDeleteCmd) Run(ctx *cli.Context) error {
	rule, err := ctx.Planner.GetRule(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Planner.DeleteRule(rule.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted rule: %s (already materialized tasks kept)\n", rule.Title)
	return nil
}
