package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/copypasta/copypasta-server/internal/crypto"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/models"
)

// minPasswordLength is the shortest password CreateUser accepts.
const minPasswordLength = 4

// userRepository is the dual-backend implementation of [UserRepository].
// It dispatches on db.dialect for the two statements that differ between
// Postgres and SQLite (placeholder style, RETURNING support) and shares
// everything else.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{db: db, logger: log}
}

func (r *userRepository) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || utf8.RuneCountInString(password) < minPasswordLength {
		return models.User{}, ErrBadCredentialsFormat
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	if r.db.dialect == dialectPostgres {
		return r.createUserPostgres(ctx, username, hash)
	}
	return r.createUserSQLite(ctx, username, hash)
}

func (r *userRepository) createUserPostgres(ctx context.Context, username, hash string) (models.User, error) {
	var user models.User
	row := r.db.QueryRowContext(ctx, pgCreateUser, username, hash)

	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}
		r.logger.Err(err).Str("func", "*userRepository.createUserPostgres").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return user, nil
}

func (r *userRepository) createUserSQLite(ctx context.Context, username, hash string) (models.User, error) {
	res, err := r.db.ExecContext(ctx, liteCreateUser, username, hash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, ErrUsernameTaken
		}
		r.logger.Err(err).Str("func", "*userRepository.createUserSQLite").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	userID, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return r.findUserByID(ctx, userID)
}

func (r *userRepository) findUserByID(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	row := r.db.QueryRowContext(ctx, `SELECT user_id, username, password_hash, created_at FROM users WHERE user_id = ?;`, userID)
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return user, nil
}

func (r *userRepository) VerifyCredentials(ctx context.Context, username, password string) (models.User, error) {
	user, err := r.findUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			crypto.VerifyDummyPassword(password)
			return models.User{}, ErrAuthFailed
		}
		return models.User{}, err
	}

	ok, err := crypto.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		return models.User{}, ErrAuthFailed
	}

	return user, nil
}

func (r *userRepository) findUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := pgFindUserByUsername
	if r.db.dialect == dialectSQLite {
		query = liteFindUserByUsername
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, username)
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, err
		}
		r.logger.Err(err).Str("func", "*userRepository.findUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	return user, nil
}
