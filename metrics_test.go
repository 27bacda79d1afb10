package goLaunch

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricBootstrapSuccess)

	if got := m.Value(MetricBootstrapSuccess); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMetricsEnabledIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricBootstrapSuccess)
	m.Inc(MetricBootstrapSuccess)
	m.Inc(MetricBootstrapSuccess)

	if got := m.Value(MetricBootstrapSuccess); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.Inc(MetricBootstrapShortCircuit)
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perG)
	if got := m.Value(MetricBootstrapShortCircuit); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestMetricsHistogramBucketCorrectness(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})

	observations := []time.Duration{
		5 * time.Millisecond,
		10 * time.Millisecond,
		25 * time.Millisecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		250 * time.Millisecond,
		500 * time.Millisecond,
		700 * time.Millisecond,
	}

	for _, d := range observations {
		m.Observe(MetricExchangeLatency, d)
	}

	snap := m.Snapshot()
	buckets := snap.Histograms[MetricExchangeLatency]
	if len(buckets) != 8 {
		t.Fatalf("expected 8 buckets, got %d", len(buckets))
	}

	for i, v := range buckets {
		if v != 1 {
			t.Fatalf("bucket %d expected 1, got %d", i, v)
		}
	}
}

func TestMetricsSnapshotConsistency(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Inc(MetricBootstrapSuccess)
	m.Inc(MetricBootstrapGuest)
	m.Inc(MetricBootstrapGuest)
	m.Observe(MetricExchangeLatency, 2*time.Millisecond)

	snap := m.Snapshot()

	if snap.Counters[MetricBootstrapSuccess] != 1 {
		t.Fatalf("expected MetricBootstrapSuccess=1 got %d", snap.Counters[MetricBootstrapSuccess])
	}
	if snap.Counters[MetricBootstrapGuest] != 2 {
		t.Fatalf("expected MetricBootstrapGuest=2 got %d", snap.Counters[MetricBootstrapGuest])
	}
	if len(snap.Histograms[MetricExchangeLatency]) != 8 {
		t.Fatalf("expected histogram length 8")
	}
	if snap.Histograms[MetricExchangeLatency][0] != 1 {
		t.Fatalf("expected first histogram bucket=1 got %d", snap.Histograms[MetricExchangeLatency][0])
	}
}

func TestShortCircuitWithMetricsStillAvoidsExchange(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}
	c, done := buildTestCoordinator(t, metricsTestConfig(), ex)
	defer done()

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("short-circuit Initialize failed: %v", err)
	}

	if got := ex.calls.Load(); got != 1 {
		t.Fatalf("expected short-circuit to avoid the exchange, got %d calls", got)
	}

	snap := c.MetricsSnapshot()
	if snap.Counters[MetricBootstrapShortCircuit] != 1 {
		t.Fatalf("expected one short-circuit count, got %d", snap.Counters[MetricBootstrapShortCircuit])
	}
	if len(snap.Histograms[MetricExchangeLatency]) != 8 {
		t.Fatal("expected exchange latency histogram in snapshot")
	}
}
