package big

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

type BigAddCmd struct {
	Title    string `arg:"" help:"Big task title."`
	Due      string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Priority string `short:"p" help:"Priority (P1-P4)."`
	Pinned   bool   `help:"Pin to the top of the list."`
}

func (c *BigAddCmd) Validate() error {
	if c.Due != "" && !utils.ValidateDateFormat(c.Due) {
		return fmt.Errorf("invalid due date format (expected YYYY-MM-DD): %s", c.Due)
	}
	if !models.Priority(c.Priority).Valid() {
		return fmt.Errorf("priority must be one of P1-P4, got %s", c.Priority)
	}
	return nil
}

func (c *BigAddCmd) Run(ctx *cli.Context) error {
	b, err := ctx.Planner.UpsertBigTask(models.BigTask{
		Mode:     ctx.Mode,
		Title:    c.Title,
		DueDate:  c.Due,
		Priority: models.Priority(c.Priority),
		Pinned:   c.Pinned,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added big task %s: %s\n", cli.ShortID(b.ID), b.Title)
	return nil
}

type BigListCmd struct {
	All bool `help:"Include done items."`
}

func (c *BigListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Planner.ListBigTasks(ctx.Mode)
	if err != nil {
		return err
	}

	shown := 0
	for _, b := range items {
		if b.Done && !c.All {
			continue
		}
		check := " "
		if b.Done {
			check = "x"
		}
		pin := ""
		if b.Pinned {
			pin = "* "
		}
		due := ""
		if b.DueDate != "" {
			due = " (due " + b.DueDate + ")"
		}
		fmt.Printf("%s  [%s] %s%s%s\n", cli.ShortID(b.ID), check, pin, b.Title, due)
		shown++
	}
	if shown == 0 {
		fmt.Println("No big tasks.")
	}
	return nil
}

type BigDoneCmd struct {
	ID string `arg:"" help:"Big task id."`
}

func (c *BigDoneCmd) Run(ctx *cli.Context) error {
	b, err := ctx.Planner.GetBigTask(c.ID)
	if err != nil {
		return err
	}

	b.Done = !b.Done
	updated, err := ctx.Planner.UpsertBigTask(b)
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

type BigDeleteCmd struct {
	ID string `arg:"" help:"Big task id."`
}

func (c *BigDeleteCmd) Run(ctx *cli.Context) error {
	b, err := ctx.Planner.GetBigTask(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Planner.DeleteBigTask(b.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted big task: %s\n", b.Title)
	return nil
}
