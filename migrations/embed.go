package migrations

import "embed"

// FS holds the schema migrations for each SQL backend, under sqlite/ and postgres/.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
