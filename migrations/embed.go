// Package migrations embeds the SQL migration files so they can be
// applied at startup without requiring the files on disk.
package migrations

import "embed"

// FS contains the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
