// Package migrations embeds the goose SQL migrations applied at startup
// when a PostgreSQL DSN is configured.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
