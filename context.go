package goLaunch

import (
	"context"

	"github.com/MrEthical07/goLaunch/credential"
)

type launchTokenContextKey struct{}
type timezoneContextKey struct{}
type authChannelContextKey struct{}

// WithLaunchToken attaches a per-call launch token to ctx, overriding the
// coordinator's configured [TokenSource] for that call.
//
//	Docs: docs/coordinator.md
func WithLaunchToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, launchTokenContextKey{}, token)
}

// WithTimezone attaches the caller’s IANA timezone name to ctx. It overrides
// the configured session timezone for that call.
//
//	Docs: docs/coordinator.md
func WithTimezone(ctx context.Context, timezone string) context.Context {
	return context.WithValue(ctx, timezoneContextKey{}, timezone)
}

// WithAuthChannel attaches the detected authentication channel to ctx. The
// Coordinator sets it before calling the [Exchanger]; transport
// implementations read it to decide how credentials travel.
//
//	Docs: docs/exchange.md
func WithAuthChannel(ctx context.Context, ch credential.Channel) context.Context {
	return context.WithValue(ctx, authChannelContextKey{}, ch)
}

// AuthChannelFromContext returns the authentication channel attached by
// [WithAuthChannel], if any.
//
//	Docs: docs/exchange.md
func AuthChannelFromContext(ctx context.Context) (credential.Channel, bool) {
	if ctx == nil {
		return credential.Channel{}, false
	}

	ch, ok := ctx.Value(authChannelContextKey{}).(credential.Channel)
	return ch, ok
}

func launchTokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	token, ok := ctx.Value(launchTokenContextKey{}).(string)
	return token, ok
}

func timezoneFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	timezone, _ := ctx.Value(timezoneContextKey{}).(string)
	return timezone
}
