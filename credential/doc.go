// Package credential detects which authentication channel a process was
// launched under and describes the material available on that channel.
//
// # Channels
//
// Two channels exist. Embedded launches carry an opaque platform credential
// blob handed to the process at startup; web launches carry nothing explicit
// because authentication rides on an ambient cookie session. Detection is a
// pure read of the configured [Source]: a non-empty embedded credential wins,
// otherwise the channel is web.
//
// # Architecture boundaries
//
// This package classifies and describes credentials. It does NOT verify them,
// attach them to requests, or perform any network I/O — transport belongs to
// the exchange package and policy to the server behind it. The optional
// external ID is read from the credential without signature verification and
// is suitable for telemetry only.
//
// # What this package must NOT do
//
//   - Import goLaunch or exchange (no upward imports).
//   - Treat the unverified external ID as an authenticated identity.
//   - Fail detection: a malformed credential still yields an embedded
//     channel, just without an external ID.
package credential
