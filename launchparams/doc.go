// Package launchparams decodes the compact dash-delimited launch token format
// carried by platform deep links into typed startup parameters.
//
// # Token format
//
// A token is a flat sequence of dash-separated fields consumed two at a time
// as (short code, value) pairs, e.g. "i-abc123-r-def456". Short codes map to
// a closed set of [Key] values; pairs with unknown codes and a dangling
// trailing field are skipped without error. Decoding is total: any input
// string, including the empty string, produces a valid [Params].
//
// # Architecture boundaries
//
// This package owns the token codec and nothing else. It does NOT talk to the
// network, read the environment, or decide what a parameter means — those
// responsibilities belong to the Coordinator.
//
// # What this package must NOT do
//
//   - Import goLaunch or any of its subpackages (no upward imports).
//   - Reject a token: malformed input degrades to fewer parameters, never to
//     an error.
//   - Mutate a [Params] after construction.
package launchparams
