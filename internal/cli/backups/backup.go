package backups

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/backup"
	"github.com/daygrid/daygrid/internal/cli"
)

type ExportCmd struct {
	Path string `arg:"" help:"Archive file to write (JSON)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	a, err := mgr.ExportToFile(c.Path)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d tasks, %d rules, %d habits, %d habit logs, %d big tasks, %d notes to %s\n",
		len(a.Tasks), len(a.Rules), len(a.Habits), len(a.HabitLogs), len(a.BigTasks), len(a.Notes), c.Path)
	return nil
}

// ImportCmd replaces all current data with an archive's contents.
type ImportCmd struct {
	Path    string `arg:"" help:"Archive file to read (JSON)."`
	Confirm bool   `help:"Confirm replacing all existing data." required:""`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	a, err := mgr.ImportFromFile(c.Path)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d tasks, %d rules, %d habits, %d habit logs, %d big tasks, %d notes\n",
		len(a.Tasks), len(a.Rules), len(a.Habits), len(a.HabitLogs), len(a.BigTasks), len(a.Notes))
	return nil
}

// ClearCmd removes every record from every collection.
type ClearCmd struct {
	Confirm bool `help:"Confirm deleting all data." required:""`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Reset(); err != nil {
		return err
	}
	fmt.Println("All data cleared.")
	return nil
}
