package goLaunch

import (
	"context"
	"sync"
)

var (
	registryMu         sync.RWMutex
	defaultCoordinator *Coordinator
)

// SetDefault describes the setdefault operation and its observable behavior.
//
// SetDefault may return an error when input validation, dependency calls, or security checks fail.
// SetDefault does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func SetDefault(c *Coordinator) {
	registryMu.Lock()
	defaultCoordinator = c
	registryMu.Unlock()
}

// Default describes the default operation and its observable behavior.
//
// Default may return an error when input validation, dependency calls, or security checks fail.
// Default does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Default() *Coordinator {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return defaultCoordinator
}

// ResetDefault describes the resetdefault operation and its observable behavior.
//
// ResetDefault may return an error when input validation, dependency calls, or security checks fail.
// ResetDefault does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func ResetDefault() *Coordinator {
	registryMu.Lock()
	defer registryMu.Unlock()
	previous := defaultCoordinator
	defaultCoordinator = nil
	return previous
}

// Initialize describes the initialize operation and its observable behavior.
//
// Initialize may return an error when input validation, dependency calls, or security checks fail.
// Initialize does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Initialize(ctx context.Context) error {
	c := Default()
	if c == nil {
		return ErrCoordinatorNotReady
	}
	return c.Initialize(ctx)
}

// Reinitialize describes the reinitialize operation and its observable behavior.
//
// Reinitialize may return an error when input validation, dependency calls, or security checks fail.
// Reinitialize does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Reinitialize(ctx context.Context) error {
	c := Default()
	if c == nil {
		return ErrCoordinatorNotReady
	}
	c.Reinitialize(ctx)
	return nil
}
