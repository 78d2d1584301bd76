// Package sqlite holds the embedded schema migrations of the SQLite store.
package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// migrationFiles are applied in file name order: members, suggestions, ratings.
//
//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate brings the members, suggestions and ratings tables up to date.
// Applied migrations are tracked by darwin, so running it on every start is safe.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(migrationFiles, "sql")
}
