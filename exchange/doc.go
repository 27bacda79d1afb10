// Package exchange implements wire transports for the session exchange that
// goLaunch.Coordinator drives during bootstrap.
//
// # Transports
//
//   - [HTTP]: JSON-over-HTTP client implementing goLaunch.Exchanger and
//     goLaunch.SubsidiaryLoader against a launch backend.
//
// The transport reads the detected credential channel from the request context
// (set by the coordinator) and applies it to outbound requests: embedded
// credentials ride in a header, web sessions rely on ambient cookies.
//
// # Architecture boundaries
//
// This package translates coordinator calls into HTTP semantics. It does NOT
// decide session outcomes itself: status codes and payload shapes are mapped
// onto the sentinel errors goLaunch defines, and the coordinator interprets
// them.
//
// # What this package must NOT do
//
//   - Cache or persist users (the coordinator owns the session cache).
//   - Retry requests (callers decide whether a failed bootstrap is retried).
//   - Inspect or validate credential blobs beyond attaching them.
package exchange
