package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/models"
)

// clipboardRepository is the dual-backend implementation of
// [ClipboardRepository]. InsertEntry is the one operation that must be
// atomic: version bump, entry insert, and history eviction all happen
// inside a single transaction so a concurrent paste from another device
// can never observe a half-applied write or reuse a version number.
type clipboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClipboardRepository constructs a [ClipboardRepository] backed by db.
func NewClipboardRepository(db *DB, log *logger.Logger) ClipboardRepository {
	log.Debug().Msg("creating clipboard repository")
	return &clipboardRepository{db: db, logger: log}
}

func (r *clipboardRepository) InsertEntry(ctx context.Context, userID int64, contentType models.ContentType, content, metadata, clientID string, history int) (models.ClipboardEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.ClipboardEntry{}, fmt.Errorf("%w: beginning transaction: %v", ErrStore, err)
	}
	defer tx.Rollback()

	var entry models.ClipboardEntry
	if r.db.dialect == dialectPostgres {
		entry, err = r.insertEntryPostgres(ctx, tx, userID, contentType, content, metadata, clientID, history)
	} else {
		entry, err = r.insertEntrySQLite(ctx, tx, userID, contentType, content, metadata, clientID, history)
	}
	if err != nil {
		return models.ClipboardEntry{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.ClipboardEntry{}, fmt.Errorf("%w: committing transaction: %v", ErrStore, err)
	}

	return entry, nil
}

func (r *clipboardRepository) insertEntryPostgres(ctx context.Context, tx *sql.Tx, userID int64, contentType models.ContentType, content, metadata, clientID string, history int) (models.ClipboardEntry, error) {
	var version int64
	if err := tx.QueryRowContext(ctx, pgBumpVersionCounter, userID).Scan(&version); err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.insertEntryPostgres").Msg("error bumping version counter")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	var entry models.ClipboardEntry
	row := tx.QueryRowContext(ctx, pgInsertClipboardEntry, userID, contentType, content, metadata, version, clientID)
	if err := row.Scan(&entry.EntryID, &entry.UserID, &entry.ContentType, &entry.Content, &entry.Metadata, &entry.Version, &entry.ClientID, &entry.CreatedAt); err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.insertEntryPostgres").Msg("error inserting entry")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if _, err := tx.ExecContext(ctx, pgEvictOldEntries, userID, history); err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.insertEntryPostgres").Msg("error evicting old entries")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return entry, nil
}

func (r *clipboardRepository) insertEntrySQLite(ctx context.Context, tx *sql.Tx, userID int64, contentType models.ContentType, content, metadata, clientID string, history int) (models.ClipboardEntry, error) {
	var version int64
	if err := tx.QueryRowContext(ctx, liteBumpVersionCounter, userID).Scan(&version); err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.insertEntrySQLite").Msg("error bumping version counter")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	res, err := tx.ExecContext(ctx, liteInsertClipboardEntry, userID, contentType, content, metadata, version, clientID)
	if err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.insertEntrySQLite").Msg("error inserting entry")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	entryID, err := res.LastInsertId()
	if err != nil {
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	var entry models.ClipboardEntry
	row := tx.QueryRowContext(ctx, liteGetInsertedEntry, entryID)
	if err := row.Scan(&entry.EntryID, &entry.UserID, &entry.ContentType, &entry.Content, &entry.Metadata, &entry.Version, &entry.ClientID, &entry.CreatedAt); err != nil {
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if _, err := tx.ExecContext(ctx, liteEvictOldEntries, userID, userID, history); err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.insertEntrySQLite").Msg("error evicting old entries")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return entry, nil
}

func (r *clipboardRepository) GetCurrent(ctx context.Context, userID int64) (models.ClipboardEntry, error) {
	query := pgGetCurrentEntry
	if r.db.dialect == dialectSQLite {
		query = liteGetCurrentEntry
	}

	var entry models.ClipboardEntry
	row := r.db.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&entry.EntryID, &entry.UserID, &entry.ContentType, &entry.Content, &entry.Metadata, &entry.Version, &entry.ClientID, &entry.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClipboardEntry{}, ErrEmpty
		}
		r.logger.Err(err).Str("func", "*clipboardRepository.GetCurrent").Msg("error getting current entry")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return entry, nil
}

func (r *clipboardRepository) GetHistory(ctx context.Context, userID int64, limit int) ([]models.ClipboardEntry, error) {
	query := pgGetHistory
	if r.db.dialect == dialectSQLite {
		query = liteGetHistory
	}

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.GetHistory").Msg("error querying history")
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	defer rows.Close()

	entries := make([]models.ClipboardEntry, 0, limit)
	for rows.Next() {
		var entry models.ClipboardEntry
		if err := rows.Scan(&entry.EntryID, &entry.UserID, &entry.ContentType, &entry.Content, &entry.Metadata, &entry.Version, &entry.ClientID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return entries, nil
}

func (r *clipboardRepository) GetLatestVersion(ctx context.Context, userID int64) (int64, error) {
	query := pgGetLatestVersion
	if r.db.dialect == dialectSQLite {
		query = liteGetLatestVersion
	}

	var version int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&version); err != nil {
		r.logger.Err(err).Str("func", "*clipboardRepository.GetLatestVersion").Msg("error getting latest version")
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return version, nil
}
