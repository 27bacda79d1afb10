package cache

import (
	"context"
	"errors"
)

// ErrUnavailable is an exported constant or variable used by the bootstrap coordinator.
var ErrUnavailable = errors.New("cache unavailable")

// Cache defines a public type used by goLaunch APIs.
//
// Cache instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Cache interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
