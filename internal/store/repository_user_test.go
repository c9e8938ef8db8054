package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copypasta/copypasta-server/internal/crypto"
	"github.com/copypasta/copypasta-server/internal/logger"
)

func mustHashForTest(t *testing.T, password string) string {
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: conn, dialect: dialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
		AddRow(1, "john", "argon2id$...", now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), "john", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Username)
}

func TestCreateUser_BadCredentialsFormat(t *testing.T) {
	repo, _, conn := newTestUserRepo(t)
	defer conn.Close()

	_, err := repo.CreateUser(context.Background(), "   ", "s3cret")
	assert.ErrorIs(t, err, ErrBadCredentialsFormat)

	_, err = repo.CreateUser(context.Background(), "john", "abc")
	assert.ErrorIs(t, err, ErrBadCredentialsFormat)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), "john", "s3cret")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("network error"))

	_, err := repo.CreateUser(context.Background(), "john", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
}

func TestVerifyCredentials_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	hash := mustHashForTest(t, "s3cret")
	rows := sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
		AddRow(1, "john", hash, time.Now())

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john").
		WillReturnRows(rows)

	user, err := repo.VerifyCredentials(context.Background(), "john", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
}

func TestVerifyCredentials_WrongPassword(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	hash := mustHashForTest(t, "s3cret")
	rows := sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
		AddRow(1, "john", hash, time.Now())

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john").
		WillReturnRows(rows)

	_, err := repo.VerifyCredentials(context.Background(), "john", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestVerifyCredentials_UnknownUsername(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.VerifyCredentials(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestVerifyCredentials_UnexpectedDBError(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john").
		WillReturnError(errors.New("network error"))

	_, err := repo.VerifyCredentials(context.Background(), "john", "s3cret")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "store error") || errors.Is(err, ErrStore))
}
