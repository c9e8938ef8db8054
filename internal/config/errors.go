package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	ErrInvalidStorageConfig   = errors.New("invalid storage configuration")
	ErrInvalidAppConfig       = errors.New("invalid app configuration")
	ErrInvalidClipboardConfig = errors.New("invalid clipboard configuration")
)
