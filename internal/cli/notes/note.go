package notes

import (
	"errors"
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
	"github.com/daygrid/daygrid/internal/storage"
)

// NoteSetCmd sets the single free-text note for a day, replacing any
// existing text.
type NoteSetCmd struct {
	Text string `arg:"" help:"Note text."`
	Date string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *NoteSetCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if _, err := ctx.Planner.SetNote(date, ctx.Mode, c.Text); err != nil {
		return err
	}
	fmt.Printf("Saved note for %s\n", date)
	return nil
}

type NoteShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	note, err := ctx.Planner.GetNote(date, ctx.Mode)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Printf("No note for %s.\n", date)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(note.Text)
	return nil
}
