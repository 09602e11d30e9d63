// Package splitbalance carries assets embedded into the binary.
package splitbalance

import "embed"

// MigrationsFS holds the SQL schema migrations applied at startup.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
