// Package store persists pattern snapshots in SQLite. It is a consumer of
// the snapshot boundary: graphs go in and come out as their canonical JSON
// encoding, and the store never inspects graph internals.
//
// What:
//
//   - Store: a named-pattern table over database/sql with the pure-Go
//     modernc.org/sqlite driver; schema is migrated on Open.
//   - Save (upsert), Load, List, Delete, Close.
//
// Why:
//   - The core model performs no persistence of its own; sessions that
//     outlive a process keep their patterns here.
//
// Concurrency: the *sql.DB pool is safe for concurrent use, but the graphs
// passed to Save follow the single-owner rule — encode happens on the
// caller's goroutine before any I/O.
//
// Errors:
//
//   - ErrNotFound — Load on a name that was never saved (Delete of such a
//     name is an idempotent no-op, matching the model's removal semantics)
package store
