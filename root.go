// Package bloghub holds assets that belong to the module root, currently the
// embedded database migrations applied by the migrate subcommand.
package bloghub

import "embed"

// Migrations contains the goose SQL migrations for the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
