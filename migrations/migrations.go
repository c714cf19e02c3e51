// Package migrations embeds the versioned schema files for both
// storage backends. Files are named NNN_name.sql and applied in order
// by the migration runner.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
