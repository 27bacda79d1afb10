package goLaunch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type countingExchanger struct {
	calls  atomic.Int64
	mu     sync.Mutex
	seen   []Request
	result Result
	err    error
}

func (e *countingExchanger) Exchange(_ context.Context, req Request) (Result, error) {
	e.calls.Add(1)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen = append(e.seen, req)
	return e.result, e.err
}

func (e *countingExchanger) lastRequest() Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.seen) == 0 {
		return Request{}
	}
	return e.seen[len(e.seen)-1]
}

type recordingRouter struct {
	mu      sync.Mutex
	targets []string
	err     error
}

func (r *recordingRouter) Navigate(_ context.Context, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.targets = append(r.targets, target)
	return nil
}

func (r *recordingRouter) navigated() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.targets))
	copy(out, r.targets)
	return out
}

type failingCache struct {
	getErr error
	setErr error
}

func (f failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, f.getErr
}

func (f failingCache) Set(context.Context, string, []byte) error {
	return f.setErr
}

func metricsTestConfig() Config {
	cfg := defaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true
	return cfg
}

func buildTestCoordinator(t *testing.T, cfg Config, ex Exchanger) (*Coordinator, func()) {
	t.Helper()

	c, err := New().
		WithConfig(cfg).
		WithExchanger(ex).
		WithTokenSource(StaticTokenSource{Token: "i-abc123-r-def456"}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return c, c.Close
}

func TestInitializeSuccessPublishesReadyState(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1", Username: "alice"}},
	}
	c, done := buildTestCoordinator(t, metricsTestConfig(), ex)
	defer done()

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	state := c.State()
	if !state.Ready || state.Loading || state.Err != nil {
		t.Fatalf("expected settled ready state, got %+v", state)
	}
	if state.User == nil || state.User.ID != "u1" {
		t.Fatalf("expected user u1, got %+v", state.User)
	}
	if got := ex.calls.Load(); got != 1 {
		t.Fatalf("expected one exchange call, got %d", got)
	}

	req := ex.lastRequest()
	if req.InviteCode != "abc123" {
		t.Fatalf("expected invite abc123, got %q", req.InviteCode)
	}
	if req.ReferalID != "def456" {
		t.Fatalf("expected referal def456, got %q", req.ReferalID)
	}
	if req.Timezone == "" {
		t.Fatal("expected a timezone on the exchange request")
	}

	snap := c.MetricsSnapshot()
	if snap.Counters[MetricBootstrapSuccess] != 1 {
		t.Fatalf("expected one success count, got %d", snap.Counters[MetricBootstrapSuccess])
	}
}

func TestInitializeSecondCallSkipsExchange(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1", Username: "alice"}},
	}
	c, done := buildTestCoordinator(t, metricsTestConfig(), ex)
	defer done()

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("first Initialize failed: %v", err)
	}
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	if got := ex.calls.Load(); got != 1 {
		t.Fatalf("expected exchange untouched on short-circuit, got %d calls", got)
	}

	state := c.State()
	if !state.Ready || state.User == nil || state.User.ID != "u1" {
		t.Fatalf("expected republished user state, got %+v", state)
	}

	snap := c.MetricsSnapshot()
	if snap.Counters[MetricBootstrapShortCircuit] != 1 {
		t.Fatalf("expected one short-circuit count, got %d", snap.Counters[MetricBootstrapShortCircuit])
	}
}

func TestInitializeShortCircuitSurvivesCacheFailure(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}

	// Set succeeds so the run completes; Get fails afterwards so the
	// short-circuit has nothing to republish from.
	cacheFake := &flakyCache{}
	c, err := New().
		WithConfig(metricsTestConfig()).
		WithExchanger(ex).
		WithCache(cacheFake).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer c.Close()

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("first Initialize failed: %v", err)
	}

	cacheFake.failReads.Store(true)
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("short-circuit Initialize failed: %v", err)
	}

	state := c.State()
	if !state.Ready || state.Err != nil {
		t.Fatalf("expected degraded ready state, got %+v", state)
	}
	if state.User != nil {
		t.Fatalf("expected nil user when cache read fails, got %+v", state.User)
	}
	if got := ex.calls.Load(); got != 1 {
		t.Fatalf("short-circuit must not re-run the exchange, got %d calls", got)
	}
}

type flakyCache struct {
	mu        sync.Mutex
	values    map[string][]byte
	failReads atomic.Bool
}

func (f *flakyCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.failReads.Load() {
		return nil, false, errors.New("cache offline")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *flakyCache) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = map[string][]byte{}
	}
	f.values[key] = value
	return nil
}

func TestInitializeNilCoordinatorNotReady(t *testing.T) {
	var c *Coordinator
	if err := c.Initialize(context.Background()); !errors.Is(err, ErrCoordinatorNotReady) {
		t.Fatalf("expected ErrCoordinatorNotReady, got %v", err)
	}

	empty := &Coordinator{}
	if err := empty.Initialize(context.Background()); !errors.Is(err, ErrCoordinatorNotReady) {
		t.Fatalf("expected ErrCoordinatorNotReady for missing exchanger, got %v", err)
	}
}

func TestInitializeContextTokenOverridesSource(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}
	c, done := buildTestCoordinator(t, defaultConfig(), ex)
	defer done()

	ctx := WithLaunchToken(context.Background(), "i-override")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	req := ex.lastRequest()
	if req.InviteCode != "override" {
		t.Fatalf("expected ctx token to win, got invite %q", req.InviteCode)
	}
	if req.ReferalID != "" {
		t.Fatalf("expected no referal from override token, got %q", req.ReferalID)
	}
}

func TestInitializeTimezonePrecedence(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}

	cfg := defaultConfig()
	cfg.Session.Timezone = "Europe/Amsterdam"
	c, done := buildTestCoordinator(t, cfg, ex)
	defer done()

	ctx := WithTimezone(context.Background(), "Asia/Tokyo")
	if err := c.Initialize(ctx); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if got := ex.lastRequest().Timezone; got != "Asia/Tokyo" {
		t.Fatalf("expected ctx timezone to win, got %q", got)
	}
}

func TestInitializeConfigTimezoneUsedWithoutOverride(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}

	cfg := defaultConfig()
	cfg.Session.Timezone = "Europe/Amsterdam"
	c, done := buildTestCoordinator(t, cfg, ex)
	defer done()

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if got := ex.lastRequest().Timezone; got != "Europe/Amsterdam" {
		t.Fatalf("expected configured timezone, got %q", got)
	}
}
