package authgate

import "errors"

var (
	// ErrInvalidCredentials covers an empty username/password on Register
	// or Login, before any store round-trip is attempted.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionInvalid is returned by ValidateSession for a token that
	// fails signature, issuer, or expiry checks, or whose jti has been
	// revoked by Logout.
	ErrSessionInvalid = errors.New("session is invalid or expired")
)
