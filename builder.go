package goLaunch

import (
	"errors"

	"go.uber.org/zap"

	"github.com/MrEthical07/goLaunch/cache"
	"github.com/MrEthical07/goLaunch/credential"
	"github.com/MrEthical07/goLaunch/internal/detach"
	"github.com/MrEthical07/goLaunch/route"
)

// Builder defines a public type used by goLaunch APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	exchanger  Exchanger
	cache      cache.Cache
	router     route.Router
	sink       TelemetrySink
	source     credential.Source
	tokens     TokenSource
	subsidiary SubsidiaryLoader
	logger     *zap.Logger

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithExchanger describes the withexchanger operation and its observable behavior.
//
// WithExchanger may return an error when input validation, dependency calls, or security checks fail.
// WithExchanger does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithExchanger(e Exchanger) *Builder {
	b.exchanger = e
	return b
}

// WithCache describes the withcache operation and its observable behavior.
//
// WithCache may return an error when input validation, dependency calls, or security checks fail.
// WithCache does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCache(store cache.Cache) *Builder {
	b.cache = store
	return b
}

// WithRouter describes the withrouter operation and its observable behavior.
//
// WithRouter may return an error when input validation, dependency calls, or security checks fail.
// WithRouter does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRouter(r route.Router) *Builder {
	b.router = r
	return b
}

// WithTelemetrySink describes the withtelemetrysink operation and its observable behavior.
//
// WithTelemetrySink may return an error when input validation, dependency calls, or security checks fail.
// WithTelemetrySink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTelemetrySink(sink TelemetrySink) *Builder {
	b.sink = sink
	return b
}

// WithCredentialSource describes the withcredentialsource operation and its observable behavior.
//
// WithCredentialSource may return an error when input validation, dependency calls, or security checks fail.
// WithCredentialSource does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCredentialSource(source credential.Source) *Builder {
	b.source = source
	return b
}

// WithTokenSource describes the withtokensource operation and its observable behavior.
//
// WithTokenSource may return an error when input validation, dependency calls, or security checks fail.
// WithTokenSource does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTokenSource(source TokenSource) *Builder {
	b.tokens = source
	return b
}

// WithSubsidiaryLoader describes the withsubsidiaryloader operation and its observable behavior.
//
// WithSubsidiaryLoader may return an error when input validation, dependency calls, or security checks fail.
// WithSubsidiaryLoader does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithSubsidiaryLoader(loader SubsidiaryLoader) *Builder {
	b.subsidiary = loader
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
//
// WithLogger may return an error when input validation, dependency calls, or security checks fail.
// WithLogger does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithModeTarget describes the withmodetarget operation and its observable behavior.
//
// WithModeTarget may return an error when input validation, dependency calls, or security checks fail.
// WithModeTarget does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithModeTarget(mode, target string) *Builder {
	if b.config.Routing.ModeTargets == nil {
		b.config.Routing.ModeTargets = map[string]string{}
	}
	b.config.Routing.ModeTargets[mode] = target
	return b
}

// WithTelemetryEnabled describes the withtelemetryenabled operation and its observable behavior.
//
// WithTelemetryEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithTelemetryEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTelemetryEnabled(enabled bool) *Builder {
	b.config.Telemetry.Enabled = enabled
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Coordinator, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.exchanger == nil {
		return nil, errors.New("exchanger required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// -------- SESSION CACHE --------
	store := b.cache
	if store == nil {
		store = cache.NewMemory()
	}

	// -------- MODE TABLE --------
	modes := route.NewModes(cfg.Routing.ModeTargets)

	router := b.router
	if router == nil {
		router = route.NoOp{}
	}

	// -------- CREDENTIAL DETECTION --------
	detector := credential.NewDetector(b.source, logger)

	tokens := b.tokens
	if tokens == nil {
		tokens = EnvTokenSource{}
	}

	// -------- TELEMETRY + METRICS --------
	dispatcher := newTelemetryDispatcher(cfg.Telemetry, b.sink)
	metrics := NewMetrics(cfg.Metrics)

	coordinator := &Coordinator{
		config:     cfg,
		exchanger:  b.exchanger,
		cache:      store,
		router:     router,
		modes:      modes,
		detector:   detector,
		tokens:     tokens,
		subsidiary: b.subsidiary,
		telemetry:  dispatcher,
		metrics:    metrics,
		detached:   detach.NewRunner(logger),
		logger:     logger,
		state:      newStateCell(),
	}

	b.built = true
	return coordinator, nil
}
