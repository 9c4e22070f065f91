package migrations

import "embed"

// FS holds the schema migrations applied through the golang-migrate iofs
// source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
