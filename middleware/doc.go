// Package middleware exposes HTTP adapters that tie request handling to the
// goLaunch bootstrap lifecycle.
//
// # Guards
//
//   - [Bootstrap]: triggers Coordinator.Initialize per request and injects the
//     current session state into the request context.
//   - [RequireReady]: rejects requests with 503 until a bootstrap run has
//     published a ready state.
//   - [RequireUser]: rejects requests with 401 while the session carries no
//     authenticated user.
//
// Handlers read the injected state through [SessionFromContext].
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Coordinator calls. It does NOT
// run exchanges or touch the session cache itself; all decisions come from the
// coordinator's published state.
//
// # What this package must NOT do
//
//   - Call the exchange backend directly (delegates to Coordinator.Initialize).
//   - Block requests while a bootstrap run is in flight (Initialize returns
//     immediately for concurrent callers).
//   - Persist or mutate session state (the coordinator owns every transition).
package middleware
