package authgate

import (
	"context"

	"github.com/copypasta/copypasta-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authgate_mock.go -package=mock

// Gate is the session/authentication surface the handler layer consumes.
type Gate interface {
	// Register creates a new account and immediately issues it a session.
	Register(ctx context.Context, username, password string) (models.User, models.Token, error)

	// Login verifies credentials and issues a fresh session.
	Login(ctx context.Context, username, password string) (models.User, models.Token, error)

	// ValidateSession checks a raw session token string and returns the
	// owning user's ID. Returns ErrSessionInvalid for anything wrong with
	// the token, including a revoked jti.
	ValidateSession(ctx context.Context, tokenString string) (int64, error)

	// Logout revokes tokenString's jti so ValidateSession rejects it for
	// the remainder of its natural lifetime, even though the token is
	// otherwise still cryptographically valid.
	Logout(ctx context.Context, tokenString string) error
}
