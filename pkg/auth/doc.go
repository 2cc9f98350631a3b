// Package auth is the reference pipeline of this module: it authenticates
// a username/password pair by threading it through validate, lookup,
// password check, notify and audit steps built from the solo combinators,
// short-circuiting the rest of the track on the first failure.
//
// The three external operations (lookup, password check, notification)
// are supplied as plain function values in Deps, so every step is
// substitutable in tests without interface machinery. The audit logger is
// an explicit collaborator passed to New; nothing here mutates global
// state, and a Pipeline is safe for concurrent use.
package auth
