// Package migrations embeds the SQLite schema migration files so they
// compile into the binary.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
