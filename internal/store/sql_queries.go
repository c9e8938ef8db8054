package store

// Query text differs only cosmetically between dialects: pgx accepts
// "$1"-style placeholders and sqlite3 accepts "?"-style ones, plus
// Postgres's upsert names the column as user_metadata.value in its
// DO UPDATE SET clause while SQLite's uses the bare column name.
// Both dialects are ANSI-SQL enough that separate constant sets (rather
// than a query builder) keep each statement readable end to end.

const (
	pgCreateUser = `INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id, username, password_hash, created_at;`

	pgFindUserByUsername = `SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE username = $1;`

	pgBumpVersionCounter = `INSERT INTO user_metadata (user_id, key, value)
		VALUES ($1, 'version_counter', 1)
		ON CONFLICT (user_id, key) DO UPDATE SET value = user_metadata.value + 1
		RETURNING value;`

	pgInsertClipboardEntry = `INSERT INTO clipboard_entries (user_id, content_type, content, metadata, version, client_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING entry_id, user_id, content_type, content, metadata, version, client_id, created_at;`

	pgEvictOldEntries = `DELETE FROM clipboard_entries
		WHERE user_id = $1 AND entry_id NOT IN (
			SELECT entry_id FROM clipboard_entries
			WHERE user_id = $1
			ORDER BY version DESC
			LIMIT $2
		);`

	pgGetCurrentEntry = `SELECT entry_id, user_id, content_type, content, metadata, version, client_id, created_at
		FROM clipboard_entries
		WHERE user_id = $1
		ORDER BY version DESC
		LIMIT 1;`

	pgGetHistory = `SELECT entry_id, user_id, content_type, content, metadata, version, client_id, created_at
		FROM clipboard_entries
		WHERE user_id = $1
		ORDER BY version DESC
		LIMIT $2;`

	pgGetLatestVersion = `SELECT COALESCE(MAX(version), 0)
		FROM clipboard_entries
		WHERE user_id = $1;`
)

const (
	liteCreateUser = `INSERT INTO users (username, password_hash)
		VALUES (?, ?);`

	liteFindUserByUsername = `SELECT user_id, username, password_hash, created_at
		FROM users
		WHERE username = ?;`

	liteBumpVersionCounter = `INSERT INTO user_metadata (user_id, key, value)
		VALUES (?, 'version_counter', 1)
		ON CONFLICT (user_id, key) DO UPDATE SET value = value + 1
		RETURNING value;`

	liteInsertClipboardEntry = `INSERT INTO clipboard_entries (user_id, content_type, content, metadata, version, client_id)
		VALUES (?, ?, ?, ?, ?, ?);`

	liteGetInsertedEntry = `SELECT entry_id, user_id, content_type, content, metadata, version, client_id, created_at
		FROM clipboard_entries
		WHERE entry_id = ?;`

	liteEvictOldEntries = `DELETE FROM clipboard_entries
		WHERE user_id = ? AND entry_id NOT IN (
			SELECT entry_id FROM clipboard_entries
			WHERE user_id = ?
			ORDER BY version DESC
			LIMIT ?
		);`

	liteGetCurrentEntry = `SELECT entry_id, user_id, content_type, content, metadata, version, client_id, created_at
		FROM clipboard_entries
		WHERE user_id = ?
		ORDER BY version DESC
		LIMIT 1;`

	liteGetHistory = `SELECT entry_id, user_id, content_type, content, metadata, version, client_id, created_at
		FROM clipboard_entries
		WHERE user_id = ?
		ORDER BY version DESC
		LIMIT ?;`

	liteGetLatestVersion = `SELECT COALESCE(MAX(version), 0)
		FROM clipboard_entries
		WHERE user_id = ?;`
)
