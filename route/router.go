package route

import (
	"context"
)

// Router defines a public type used by goLaunch APIs.
//
// Router instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Router interface {
	Navigate(ctx context.Context, target string) error
}

// RouterFunc defines a public type used by goLaunch APIs.
//
// RouterFunc instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RouterFunc func(ctx context.Context, target string) error

// Navigate describes the navigate operation and its observable behavior.
//
// Navigate may return an error when input validation, dependency calls, or security checks fail.
// Navigate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f RouterFunc) Navigate(ctx context.Context, target string) error {
	return f(ctx, target)
}

// NoOp defines a public type used by goLaunch APIs.
//
// NoOp instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NoOp struct{}

// Navigate describes the navigate operation and its observable behavior.
//
// Navigate may return an error when input validation, dependency calls, or security checks fail.
// Navigate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (NoOp) Navigate(context.Context, string) error {
	return nil
}
