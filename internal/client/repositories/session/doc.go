// Package session persists the current myFlix session (bearer token and
// cached user snapshot) in a local SQLite database.
//
// # Storage
//
// One key/value table, "session", managed by embedded goose migrations:
//
//	token -> raw bearer token
//	user  -> JSON-encoded models.User snapshot (password stripped)
//
// # Consistency
//
// Writers are serialized by the store and every mutation rewrites the whole
// user snapshot inside a single transaction, so a reader never observes a
// half-updated favorites list. Reads never fail: missing, unreadable or
// corrupted data is reported as an absent session and logged.
package session
