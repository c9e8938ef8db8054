// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// copypasta server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file (last non-empty source wins per field).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing and issuance parameters for the session
	// substrate the long-poll channel rides on. Not prefixed: SECRET_KEY
	// must resolve under exactly that name.
	App App

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Clipboard holds the history-bound and poll-timeout tunables. Not
	// prefixed: HISTORY_LIMIT and POLL_MAX_TIMEOUT must resolve under
	// exactly those names.
	Clipboard Clipboard

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session/token parameters.
type App struct {
	// TokenSignKey is the secret used to sign and verify session tokens
	// (HMAC-SHA256 JWTs). Must be kept confidential.
	// Env: SECRET_KEY
	TokenSignKey string `env:"SECRET_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session
	// token, validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"APP_TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid
	// after issuance. Sessions are long-lived by design; the default
	// (set in defaults.go) is 10 years.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"APP_TOKEN_DURATION"`
}

// Server holds network and timeout settings for the HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds how long the server waits to read a request's
	// headers, for every request including GET /api/poll. It does not
	// bound handler run time or response writing; a long poll is limited
	// by its own timeout query parameter, clamped by
	// Clipboard.PollMaxTimeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
//
// DSN selects the backend by scheme: a "postgres://" DSN opens a
// PostgreSQL connection via pgx, anything else is treated as a SQLite
// file path opened via mattn/go-sqlite3.
type DB struct {
	// DSN is the database connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Clipboard holds the history-bound and poll-timeout tunables.
type Clipboard struct {
	// HistoryLimit is H, the maximum number of entries retained per user.
	// Env: HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// PollMaxTimeout is the upper bound long-poll requests may request
	// via their "timeout" query parameter.
	// Env: POLL_MAX_TIMEOUT
	PollMaxTimeout time.Duration `env:"POLL_MAX_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, cfg.validate()
}
