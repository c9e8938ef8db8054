// Package store provides atomic, serializable operations on the server's
// persistent state: users, the current clipboard entry per user, bounded
// per-user history, and the per-user version counter that orders them.
//
// Concurrency protection lives entirely in this package so the HTTP
// handler layer can be oblivious to transaction boundaries. Every
// operation that must be atomic (version bump + insert + eviction) runs
// inside a single database/sql transaction.
package store
