package goLaunch

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MrEthical07/goLaunch/cache"
	"github.com/MrEthical07/goLaunch/credential"
	"github.com/MrEthical07/goLaunch/internal/detach"
	"github.com/MrEthical07/goLaunch/route"
)

// Coordinator defines a public type used by goLaunch APIs.
//
// Coordinator instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Coordinator struct {
	config     Config
	exchanger  Exchanger
	cache      cache.Cache
	router     route.Router
	modes      *route.Modes
	detector   *credential.Detector
	tokens     TokenSource
	subsidiary SubsidiaryLoader
	telemetry  *telemetryDispatcher
	metrics    *Metrics
	detached   *detach.Runner
	logger     *zap.Logger

	// mu guards the run flags and the generation counter. A run publishes
	// state only while its generation is current; Reinitialize bumps the
	// generation so an abandoned run cannot clobber its replacement.
	mu           sync.Mutex
	hasCompleted bool
	isRunning    bool
	generation   uint64

	state *stateCell
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) Close() {
	if c == nil {
		return
	}
	if c.detached != nil {
		c.detached.Wait()
	}
	if c.telemetry != nil {
		c.telemetry.Close()
	}
}

// State describes the state operation and its observable behavior.
//
// State may return an error when input validation, dependency calls, or security checks fail.
// State does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) State() State {
	if c == nil || c.state == nil {
		return State{}
	}
	return c.state.Load()
}

// Subscribe returns a channel of state replacements plus a cancel function.
// The channel holds at most buffer pending values; when a subscriber lags,
// older pending values are dropped in favor of the freshest one. cancel
// closes the channel and releases the subscription.
//
//	Docs: docs/coordinator.md
func (c *Coordinator) Subscribe(buffer int) (<-chan State, func()) {
	if c == nil || c.state == nil {
		ch := make(chan State)
		close(ch)
		return ch, func() {}
	}
	return c.state.Subscribe(buffer)
}

// RegisterMode describes the registermode operation and its observable behavior.
//
// RegisterMode may return an error when input validation, dependency calls, or security checks fail.
// RegisterMode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) RegisterMode(mode, target string) error {
	if c == nil || c.modes == nil {
		return ErrCoordinatorNotReady
	}
	return c.modes.Register(mode, target)
}

// Healthy describes the healthy operation and its observable behavior.
//
// Healthy may return an error when input validation, dependency calls, or security checks fail.
// Healthy does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) Healthy(ctx context.Context) HealthStatus {
	if c == nil || c.cache == nil {
		return HealthStatus{}
	}

	type pinger interface {
		Ping(ctx context.Context) (time.Duration, error)
	}
	if p, ok := c.cache.(pinger); ok {
		latency, err := p.Ping(ctx)
		return HealthStatus{
			CacheAvailable: err == nil,
			CacheLatency:   latency,
		}
	}
	return HealthStatus{CacheAvailable: true}
}

// TelemetryDropped describes the telemetrydropped operation and its observable behavior.
//
// TelemetryDropped may return an error when input validation, dependency calls, or security checks fail.
// TelemetryDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) TelemetryDropped() uint64 {
	if c == nil || c.telemetry == nil {
		return 0
	}
	return c.telemetry.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

// WaitDetached blocks until background work spawned by completed runs has
// drained. Intended for tests and orderly shutdown.
//
//	Docs: docs/coordinator.md
func (c *Coordinator) WaitDetached() {
	if c == nil || c.detached == nil {
		return
	}
	c.detached.Wait()
}

func (c *Coordinator) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

func (c *Coordinator) metricObserve(id MetricID, d time.Duration) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Observe(id, d)
}
