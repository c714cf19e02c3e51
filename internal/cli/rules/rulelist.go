package rules

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
)

type RuleListCmd struct {
	All bool `help:"Include inactive rules."`
}

func (c *RuleListCmd) Run(ctx *cli.Context) error {
	rules, err := ctx.Planner.ListRules(ctx.Mode)
	if err != nil {
		return err
	}

	shown := 0
	for _, r := range rules {
		if !r.Active && !c.All {
			continue
		}
		status := ""
		if !r.Active {
			status = " [inactive]"
		}
		timeCol := ""
		if r.PlannedStart != "" {
			timeCol = r.PlannedStart
			if r.PlannedFinish != "" {
				timeCol += "-" + r.PlannedFinish
			}
			timeCol += " "
		}
		fmt.Printf("%s  %s%s (%s)%s\n", cli.ShortID(r.ID), timeCol, r.Title, cli.FormatWeekdays(r.Days), status)
		shown++
	}
	if shown == 0 {
		fmt.Println("No recurring rules.")
	}
	return nil
}
