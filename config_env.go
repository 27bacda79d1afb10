package goLaunch

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Pointer fields distinguish "unset" from an explicit false/zero override.
type envOverrides struct {
	UserCacheKey       string `env:"GOLAUNCH_USER_CACHE_KEY"`
	SubsidiaryCacheKey string `env:"GOLAUNCH_SUBSIDIARY_CACHE_KEY"`
	Timezone           string `env:"GOLAUNCH_TIMEZONE"`
	WarmSubsidiary     *bool  `env:"GOLAUNCH_WARM_SUBSIDIARY"`
	FollowPageParam    *bool  `env:"GOLAUNCH_FOLLOW_PAGE_PARAM"`
	TelemetryEnabled   *bool  `env:"GOLAUNCH_TELEMETRY_ENABLED"`
	TelemetryBuffer    int    `env:"GOLAUNCH_TELEMETRY_BUFFER"`
	CaptureRawToken    *bool  `env:"GOLAUNCH_CAPTURE_RAW_TOKEN"`
	MetricsEnabled     *bool  `env:"GOLAUNCH_METRICS_ENABLED"`
	LatencyHistograms  *bool  `env:"GOLAUNCH_LATENCY_HISTOGRAMS"`
}

// ConfigFromEnv describes the configfromenv operation and its observable behavior.
//
// ConfigFromEnv may return an error when input validation, dependency calls, or security checks fail.
// ConfigFromEnv does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func ConfigFromEnv() (Config, error) {
	cfg := defaultConfig()

	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if raw.UserCacheKey != "" {
		cfg.Session.UserCacheKey = raw.UserCacheKey
	}
	if raw.SubsidiaryCacheKey != "" {
		cfg.Session.SubsidiaryCacheKey = raw.SubsidiaryCacheKey
	}
	if raw.Timezone != "" {
		cfg.Session.Timezone = raw.Timezone
	}
	if raw.WarmSubsidiary != nil {
		cfg.Session.WarmSubsidiary = *raw.WarmSubsidiary
	}
	if raw.FollowPageParam != nil {
		cfg.Routing.FollowPageParam = *raw.FollowPageParam
	}
	if raw.TelemetryEnabled != nil {
		cfg.Telemetry.Enabled = *raw.TelemetryEnabled
	}
	if raw.TelemetryBuffer > 0 {
		cfg.Telemetry.BufferSize = raw.TelemetryBuffer
	}
	if raw.CaptureRawToken != nil {
		cfg.Telemetry.CaptureRawToken = *raw.CaptureRawToken
	}
	if raw.MetricsEnabled != nil {
		cfg.Metrics.Enabled = *raw.MetricsEnabled
	}
	if raw.LatencyHistograms != nil {
		cfg.Metrics.EnableLatencyHistograms = *raw.LatencyHistograms
	}

	return cfg, nil
}
