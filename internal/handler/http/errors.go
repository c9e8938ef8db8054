package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// session cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request carries no session cookie, or carries one with an
	// empty value.
	ErrNoSessionCookie = errors.New("missing session cookie")
)
