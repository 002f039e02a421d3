package migrations

import "embed"

const Dir = "."

//go:embed *.sql
var MigrationFiles embed.FS
