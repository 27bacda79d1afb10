// Package cache provides the session-scoped key/value storage used by the
// bootstrap coordinator to persist the exchanged user and warmed payloads.
//
// Two implementations ship with the module: [Memory], an in-process map that
// matches the single-process lifetime of a bootstrap session, and [Redis],
// which shares cached bootstrap state across processes behind one gateway.
// Values are opaque byte slices; encoding is owned by the caller.
//
// # Architecture boundaries
//
// This package stores and retrieves bytes. It does NOT know what a user is,
// when the coordinator writes, or which keys exist — key constants and value
// encodings belong to the Coordinator.
//
// # What this package must NOT do
//
//   - Import goLaunch or exchange (no upward imports).
//   - Treat a missing key as an error: absence is a normal result.
//   - Hand out aliases of stored buffers.
package cache
