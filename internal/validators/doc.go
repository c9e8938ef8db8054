// Package validators checks incoming paste payloads before they reach the
// Store: content_type membership, size limits, and image decodability of
// a single clipboard submission.
package validators
