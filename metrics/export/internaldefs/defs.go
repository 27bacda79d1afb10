package internaldefs

import (
	goLaunch "github.com/MrEthical07/goLaunch"
)

// CounterDef defines a public type used by goLaunch APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goLaunch.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goLaunch APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goLaunch.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the bootstrap coordinator.
var CounterDefs = []CounterDef{
	{ID: goLaunch.MetricBootstrapSuccess, Name: "golaunch_bootstrap_success_total", Help: "Bootstrap runs completed with an authenticated user."},
	{ID: goLaunch.MetricBootstrapGuest, Name: "golaunch_bootstrap_guest_total", Help: "Bootstrap runs settled as guest sessions."},
	{ID: goLaunch.MetricBootstrapFailure, Name: "golaunch_bootstrap_failure_total", Help: "Bootstrap runs ended in a terminal error."},
	{ID: goLaunch.MetricBootstrapShortCircuit, Name: "golaunch_bootstrap_short_circuit_total", Help: "Initialize calls short-circuited after a completed run."},
	{ID: goLaunch.MetricBootstrapDuplicate, Name: "golaunch_bootstrap_duplicate_total", Help: "Initialize calls coalesced into an in-flight run."},
	{ID: goLaunch.MetricBootstrapReinitialize, Name: "golaunch_bootstrap_reinitialize_total", Help: "Reinitialize invocations."},
	{ID: goLaunch.MetricExchangeError, Name: "golaunch_exchange_error_total", Help: "Exchange infrastructure failures folded into guest sessions."},
	{ID: goLaunch.MetricModeRouted, Name: "golaunch_mode_routed_total", Help: "Launch modes routed to a registered target."},
	{ID: goLaunch.MetricModeUnknown, Name: "golaunch_mode_unknown_total", Help: "Launch modes with no registered target."},
	{ID: goLaunch.MetricPageFollowed, Name: "golaunch_page_followed_total", Help: "Page parameters followed after bootstrap."},
	{ID: goLaunch.MetricNavigationFailed, Name: "golaunch_navigation_failed_total", Help: "Navigation calls rejected by the router."},
	{ID: goLaunch.MetricSubsidiaryWarmed, Name: "golaunch_subsidiary_warmed_total", Help: "Subsidiary payloads warmed into the session cache."},
	{ID: goLaunch.MetricSubsidiaryWarmFailed, Name: "golaunch_subsidiary_warm_failed_total", Help: "Failed subsidiary warm attempts."},
}

// HistogramDefs is an exported constant or variable used by the bootstrap coordinator.
var HistogramDefs = []HistogramDef{
	{ID: goLaunch.MetricExchangeLatency, Name: "golaunch_exchange_latency_seconds", Help: "Exchange latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the bootstrap coordinator.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the bootstrap coordinator.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
