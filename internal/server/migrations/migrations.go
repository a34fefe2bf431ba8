// Package migrations embeds the server's SQL schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
