// Package lifecycle implements the load and booking state machine on top of
// repositories bound to one unit of work.
//
// LoadLifecycle owns load creation, edits, deletion and every status write.
// BookingLifecycle owns booking create, update and delete and drives the load
// status through LoadLifecycle; nothing else writes load status.
//
// A lifecycle value is cheap and meant to live for a single transaction:
// command handlers build one from the repositories of an active unit of work,
// call exactly one operation, and commit or roll back.
package lifecycle
