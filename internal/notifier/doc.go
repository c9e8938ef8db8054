// Package notifier implements the long-poll wakeup primitive the Clipboard
// API's GET /api/poll endpoint rides on: a per-user condition variable that
// a Publish call broadcasts on, and that a waiting request blocks against
// until either a newer version appears, its deadline elapses, or its
// context is cancelled.
package notifier
