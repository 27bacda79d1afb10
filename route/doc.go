// Package route maps server-directed launch modes to navigation targets and
// abstracts how navigation is performed.
//
// # Mode dispatch
//
// The exchange response may name a mode such as "onboarding". A [Modes] table
// translates modes the process knows about into navigation targets; modes
// outside the table are a silent no-op so that servers can ship new modes
// before clients learn them. The table is extensible until [Modes.Freeze].
//
// # Architecture boundaries
//
// This package decides WHERE a mode leads. It does NOT decide WHEN to
// navigate — sequencing belongs to the Coordinator — and it does not ship a
// real navigation backend; hosts implement [Router] for their surface.
//
// # What this package must NOT do
//
//   - Import goLaunch, exchange, or credential (no upward imports).
//   - Error on an unknown mode.
//   - Navigate on its own initiative.
package route
