// Package config loads and validates the copypasta server's configuration
// from environment variables, command-line flags, and an optional JSON
// file, in that priority order, merged with dario.cat/mergo.
package config
