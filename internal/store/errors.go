package store

import "errors"

// Sentinel errors surfaced by Store operations. Callers match against them
// with errors.Is; everything else is an opaque StoreError.
var (
	// ErrUsernameTaken is returned by CreateUser when the username already
	// exists. Exactly one concurrent CreateUser call for a given username
	// wins; the rest observe this error.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrBadCredentialsFormat is returned by CreateUser when the trimmed
	// username is empty or the password is shorter than 4 characters.
	ErrBadCredentialsFormat = errors.New("username must be non-empty and password at least 4 characters")

	// ErrAuthFailed is returned by VerifyCredentials when the username
	// does not exist or the password does not match.
	ErrAuthFailed = errors.New("invalid username or password")

	// ErrEmpty is returned by GetCurrent when the user has no clipboard
	// entry yet.
	ErrEmpty = errors.New("no clipboard entry for user")

	// ErrStore wraps opaque I/O or schema errors from the persistence
	// backend. The API layer maps it to HTTP 500.
	ErrStore = errors.New("store error")
)
