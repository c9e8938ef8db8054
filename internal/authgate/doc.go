// Package authgate wraps account registration, login, session issuance,
// and session validation behind one entry point the HTTP handler layer
// depends on, so handlers never touch store.UserRepository or the JWT
// helpers directly.
package authgate
