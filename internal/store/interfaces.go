package store

import (
	"context"

	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/models"
)

// UserRepository persists and authenticates user accounts.
type UserRepository interface {
	// CreateUser hashes password with Argon2id and inserts a new user row.
	// Returns ErrUsernameTaken if the username is already registered.
	CreateUser(ctx context.Context, username, password string) (models.User, error)

	// VerifyCredentials looks up username and checks password against the
	// stored hash, running the comparison in constant time relative to a
	// successful lookup even when the username does not exist. Returns
	// ErrAuthFailed on any mismatch.
	VerifyCredentials(ctx context.Context, username, password string) (models.User, error)
}

// ClipboardRepository persists clipboard entries and their bounded history.
type ClipboardRepository interface {
	// InsertEntry atomically bumps the caller's version counter, inserts
	// the new entry at that version, and evicts entries beyond history.
	// Returns the inserted entry, carrying the version assigned to it.
	InsertEntry(ctx context.Context, userID int64, contentType models.ContentType, content, metadata, clientID string, history int) (models.ClipboardEntry, error)

	// GetCurrent returns the most recent clipboard entry for userID.
	// Returns ErrEmpty if the user has never pasted anything.
	GetCurrent(ctx context.Context, userID int64) (models.ClipboardEntry, error)

	// GetHistory returns up to limit entries for userID ordered newest
	// first.
	GetHistory(ctx context.Context, userID int64, limit int) ([]models.ClipboardEntry, error)

	// GetLatestVersion returns the current version counter for userID, or
	// 0 if the user has no entries yet.
	GetLatestVersion(ctx context.Context, userID int64) (int64, error)
}

// Store aggregates every repository the handler layer depends on.
type Store struct {
	Users     UserRepository
	Clipboard ClipboardRepository
	db        *DB
}

// NewStore wires repositories backed by db.
func NewStore(db *DB, log *logger.Logger) *Store {
	return &Store{
		Users:     NewUserRepository(db, log),
		Clipboard: NewClipboardRepository(db, log),
		db:        db,
	}
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
