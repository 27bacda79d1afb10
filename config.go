package goLaunch

import (
	"errors"
	"time"
)

// Config defines a public type used by goLaunch APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Session   SessionConfig
	Routing   RoutingConfig
	Telemetry TelemetryConfig
	Metrics   MetricsConfig
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by goLaunch APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// UserCacheKey is the cache key holding the exchanged user.
	UserCacheKey string

	// SubsidiaryCacheKey is the cache key holding the warmed subsidiary
	// payload.
	SubsidiaryCacheKey string

	// Timezone is the IANA zone name reported to the exchange. Empty means
	// the process-local zone.
	Timezone string

	// WarmSubsidiary controls the detached subsidiary fetch after a
	// successful bootstrap.
	WarmSubsidiary bool
}

/*
====================================
ROUTING CONFIG
====================================
*/

// RoutingConfig defines a public type used by goLaunch APIs.
//
// RoutingConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RoutingConfig struct {
	// ModeTargets seeds the mode dispatch table. Modes outside the table
	// never navigate.
	ModeTargets map[string]string

	// FollowPageParam controls navigation to the page launch parameter
	// after a successful bootstrap.
	FollowPageParam bool
}

/*
====================================
TELEMETRY CONFIG
====================================
*/

// TelemetryConfig defines a public type used by goLaunch APIs.
//
// TelemetryConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TelemetryConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool

	// CaptureRawToken controls whether the raw launch token is recorded on
	// bootstrap completion events. Disable when tokens must never leave the
	// process.
	CaptureRawToken bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goLaunch APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig may return an error when input validation, dependency calls, or security checks fail.
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			UserCacheKey:       "current-user",
			SubsidiaryCacheKey: "subsidiary",
			Timezone:           "",
			WarmSubsidiary:     true,
		},
		Routing: RoutingConfig{
			ModeTargets:     map[string]string{},
			FollowPageParam: true,
		},
		Telemetry: TelemetryConfig{
			Enabled:         false,
			BufferSize:      1024,
			DropIfFull:      true,
			CaptureRawToken: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Routing.ModeTargets = cloneModeTargets(cfg.Routing.ModeTargets)
	return out
}

func cloneModeTargets(targets map[string]string) map[string]string {
	out := make(map[string]string, len(targets))
	for mode, target := range targets {
		out[mode] = target
	}
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Session
	if c.Session.UserCacheKey == "" {
		return errors.New("Session UserCacheKey must not be empty")
	}
	if c.Session.WarmSubsidiary && c.Session.SubsidiaryCacheKey == "" {
		return errors.New("Session SubsidiaryCacheKey must not be empty when WarmSubsidiary is true")
	}
	if c.Session.SubsidiaryCacheKey != "" && c.Session.SubsidiaryCacheKey == c.Session.UserCacheKey {
		return errors.New("Session SubsidiaryCacheKey must differ from UserCacheKey")
	}
	if c.Session.Timezone != "" {
		if _, err := time.LoadLocation(c.Session.Timezone); err != nil {
			return errors.New("Session Timezone must be a valid IANA zone name")
		}
	}

	// Routing
	for mode, target := range c.Routing.ModeTargets {
		if mode == "" {
			return errors.New("Routing ModeTargets must not contain empty modes")
		}
		if target == "" {
			return errors.New("Routing ModeTargets must not contain empty targets")
		}
	}

	// Telemetry
	if c.Telemetry.Enabled && c.Telemetry.BufferSize <= 0 {
		return errors.New("Telemetry BufferSize must be > 0 when Enabled is true")
	}

	return nil
}
