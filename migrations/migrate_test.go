package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "mysql")
	if err == nil {
		t.Fatal("expected error for unsupported dialect, got nil")
	}

	if !strings.Contains(err.Error(), "unsupported dialect") {
		t.Errorf("expected 'unsupported dialect' error, got: %v", err)
	}
}
