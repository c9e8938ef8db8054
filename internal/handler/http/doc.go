// Package http implements the HTTP transport layer of the clipboard
// server.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API: session-cookie authentication, request tracing, access logging, and
// the long-poll orchestration that bridges the store and the notifier.
// Cross-cutting concerns are handled in this package before requests reach
// the store, the notifier, or the auth gate.
package http
