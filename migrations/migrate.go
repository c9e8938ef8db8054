package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// Migrate applies every pending embedded migration for the given dialect
// ("pgx" or "sqlite3") against db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	var fsys embed.FS
	switch dialect {
	case "pgx":
		fsys = postgresMigrations
	case "sqlite3":
		fsys = sqliteMigrations
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir := dialect
	if dialect == "pgx" {
		dir = "postgres"
	} else {
		dir = "sqlite"
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
