package system

import (
	"fmt"

	"github.com/daygrid/daygrid/internal/cli"
)

type MigrateCmd struct{}

// Run brings the schema up to the latest version. Init is idempotent and
// applies only pending migrations, so this works for both backends.
func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("Database schema is up to date.")
	return nil
}
