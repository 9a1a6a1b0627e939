// Package migrations embeds the schema so the migrate binary carries it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
