package goLaunch

/*
====================================
CONFIG PRESETS
====================================
*/

// HardenedConfig describes the hardenedconfig operation and its observable behavior.
//
// HardenedConfig may return an error when input validation, dependency calls, or security checks fail.
// HardenedConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func HardenedConfig() Config {
	cfg := defaultConfig()

	// Launch parameters never steer navigation and raw tokens never leave
	// the process.
	cfg.Routing.FollowPageParam = false
	cfg.Telemetry.CaptureRawToken = false
	cfg.Telemetry.DropIfFull = true

	// No speculative background fetches.
	cfg.Session.WarmSubsidiary = false

	return cfg
}

// InstrumentedConfig describes the instrumentedconfig operation and its observable behavior.
//
// InstrumentedConfig may return an error when input validation, dependency calls, or security checks fail.
// InstrumentedConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func InstrumentedConfig() Config {
	cfg := defaultConfig()

	cfg.Telemetry.Enabled = true
	cfg.Telemetry.BufferSize = 4096
	cfg.Telemetry.DropIfFull = true

	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true

	return cfg
}
