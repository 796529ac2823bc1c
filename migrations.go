// Package backoffice holds assets shared by the binaries, such as the SQL
// migrations embedded into the migrate command.
package backoffice

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
