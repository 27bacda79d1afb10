package goLaunch

import (
	"errors"
	"strings"
)

// LintSeverity defines a public type used by goLaunch APIs.
//
// LintSeverity instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LintSeverity int

const (
	// LintInfo is an exported constant or variable used by the bootstrap coordinator.
	LintInfo LintSeverity = iota
	// LintWarn is an exported constant or variable used by the bootstrap coordinator.
	LintWarn
	// LintHigh is an exported constant or variable used by the bootstrap coordinator.
	LintHigh
)

func (s LintSeverity) String() string {
	switch s {
	case LintInfo:
		return "INFO"
	case LintWarn:
		return "WARN"
	case LintHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// LintWarning defines a public type used by goLaunch APIs.
//
// LintWarning instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LintWarning struct {
	Code     string
	Severity LintSeverity
	Message  string
}

// Warnings defines a public type used by goLaunch APIs.
//
// Warnings instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Warnings []LintWarning

// Codes describes the codes operation and its observable behavior.
//
// Codes may return an error when input validation, dependency calls, or security checks fail.
// Codes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (ws Warnings) Codes() []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

// BySeverity describes the byseverity operation and its observable behavior.
//
// BySeverity may return an error when input validation, dependency calls, or security checks fail.
// BySeverity does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (ws Warnings) BySeverity(min LintSeverity) Warnings {
	out := make(Warnings, 0, len(ws))
	for _, w := range ws {
		if w.Severity >= min {
			out = append(out, w)
		}
	}
	return out
}

// AsError describes the aserror operation and its observable behavior.
//
// AsError may return an error when input validation, dependency calls, or security checks fail.
// AsError does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (ws Warnings) AsError(min LintSeverity) error {
	matched := ws.BySeverity(min)
	if len(matched) == 0 {
		return nil
	}
	parts := make([]string, 0, len(matched))
	for _, w := range matched {
		parts = append(parts, w.Code)
	}
	return errors.New("config lint: " + strings.Join(parts, ", "))
}

// Lint describes the lint operation and its observable behavior.
//
// Lint may return an error when input validation, dependency calls, or security checks fail.
// Lint does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Lint() Warnings {
	var ws Warnings

	add := func(code string, severity LintSeverity, message string) {
		ws = append(ws, LintWarning{Code: code, Severity: severity, Message: message})
	}

	// Telemetry
	if c.Telemetry.Enabled && !c.Telemetry.DropIfFull {
		add("telemetry_blocking", LintHigh,
			"telemetry emits block when the buffer is full; a slow sink stalls the bootstrap sequence")
	}
	if c.Telemetry.Enabled && c.Telemetry.CaptureRawToken {
		add("raw_token_captured", LintWarn,
			"raw launch tokens are recorded on completion events")
	}
	if c.Telemetry.Enabled && c.Telemetry.BufferSize > 0 && c.Telemetry.BufferSize < 64 {
		add("telemetry_buffer_small", LintInfo,
			"telemetry buffer below 64 drops events under modest bursts")
	}

	// Routing
	if c.Routing.FollowPageParam {
		add("page_follow_enabled", LintWarn,
			"launch parameters steer post-bootstrap navigation")
	}
	if len(c.Routing.ModeTargets) == 0 {
		add("mode_table_empty", LintInfo,
			"mode dispatch table is empty; mode parameters never navigate")
	}

	// Metrics
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		add("histograms_without_metrics", LintInfo,
			"latency histograms are requested but metrics are disabled")
	}

	return ws
}
