// Package goLaunch provides a client-side bootstrap coordinator with launch-token
// parameter decoding, credential-channel detection, cached-session persistence, and
// mode-based post-login routing.
//
// The package is designed for concurrent client workloads: Coordinator methods are safe
// to call from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goLaunch is the public surface. It exposes [Coordinator], [Builder], [Config], and
// value types (State, MetricsSnapshot, TelemetryEvent, etc.). Wire transports live in
// exchange, HTTP guards in middleware, and detached-task coordination under internal/
// where it is never exported.
//
// # What this package must NOT do
//
//   - Expose cache clients, blob encodings, or dispatcher internals in its public API.
//   - Perform network I/O outside of a bootstrap run (construction via Builder is
//     allocation-only until Build).
//   - Import exchange or middleware (both depend on goLaunch, never the reverse).
//
// # Performance contract
//
// Initialize after a completed bootstrap is the hot path. The short-circuit must not
// contact the exchange and is allowed at most one cache round-trip to republish the
// persisted user. State and Subscribe never block on in-flight runs.
package goLaunch
