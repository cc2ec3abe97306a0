package postgres

import "embed"

// MigrationsFS holds the goose SQL migrations that create the schema.
// Embedding them keeps the server binary self-contained and lets tests
// apply the exact schema the application runs against.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migrations inside MigrationsFS.
const MigrationsDir = "migrations"
