// Package migrations embeds the schema so binaries and tests run the same
// DDL without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
