package goLaunch

import "errors"

// ErrCoordinatorNotReady is an exported constant or variable used by the bootstrap coordinator.
var ErrCoordinatorNotReady = errors.New("coordinator not ready")

// ErrUnauthenticated is an exported constant or variable used by the bootstrap coordinator.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrExchangeUnavailable is an exported constant or variable used by the bootstrap coordinator.
var ErrExchangeUnavailable = errors.New("exchange unavailable")

// ErrResponseMalformed is returned when the exchange answered but the result
// cannot be interpreted. This is a contract violation, not a guest outcome.
var ErrResponseMalformed = errors.New("exchange response malformed")

// ErrSessionCachePersist is returned when the exchanged user could not be
// written to the session cache.
var ErrSessionCachePersist = errors.New("session cache persist failed")

// ErrBootstrapPanic is an exported constant or variable used by the bootstrap coordinator.
var ErrBootstrapPanic = errors.New("bootstrap sequence panicked")
