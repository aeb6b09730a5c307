// Package migrations embeds the versioned schema definitions so the
// binaries can bring a fresh database up without external tooling.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
