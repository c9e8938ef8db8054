package validators

import "context"

// Validator validates arbitrary input, optionally restricted to a subset
// of named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
