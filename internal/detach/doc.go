// Package detach provides internal primitives for running best-effort
// background work spawned by the bootstrap sequence without blocking it.
//
// # Failure isolation
//
// Detached tasks never propagate errors or panics to the spawning goroutine.
// A panic is recovered and logged; an error return is logged and counted.
// The runner tracks in-flight tasks so tests and shutdown can wait for
// quiescence.
//
// # What this package must NOT do
//
//   - Surface task failures to callers as errors.
//   - Be imported outside the goLaunch module.
package detach
