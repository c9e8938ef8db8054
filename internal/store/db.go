package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/migrations"
)

// DB wraps a *sql.DB with the dialect it was opened against, so callers
// that need dialect-specific SQL (upsert syntax, error classification) can
// branch on it without re-parsing the DSN.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// Open connects to the database described by cfg.DSN.
//
// A "postgres://" or "postgresql://" DSN opens a PostgreSQL connection via
// jackc/pgx; anything else is treated as a SQLite file path opened via
// mattn/go-sqlite3.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return openPostgres(ctx, cfg, log)
	}
	return openSQLite(ctx, cfg, log)
}

func openPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(dialectPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "openPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "openPostgres").Msg("connected to database successfully")

	return &DB{DB: conn, dialect: dialectPostgres, logger: log}, nil
}

func openSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "openSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(dialectSQLite, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "openSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite allows only one writer at a time; a single connection avoids
	// SQLITE_BUSY errors from concurrent writers racing the driver's pool.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "openSQLite").Msg("connected to database successfully")

	return &DB{DB: conn, dialect: dialectSQLite, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}
	return nil
}

// Migrate applies every pending embedded migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
