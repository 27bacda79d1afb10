package goLaunch

// PostureReport defines a public type used by goLaunch APIs.
//
// PostureReport instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PostureReport struct {
	TelemetryEnabled         bool
	TelemetryBlocking        bool
	RawTokenCaptured         bool
	MetricsEnabled           bool
	LatencyHistogramsEnabled bool
	PageFollowEnabled        bool
	SubsidiaryWarmEnabled    bool
	ModeTargets              int
	RoutingActive            bool
}

// PostureReport describes the posturereport operation and its observable behavior.
//
// PostureReport may return an error when input validation, dependency calls, or security checks fail.
// PostureReport does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Coordinator) PostureReport() PostureReport {
	if c == nil {
		return PostureReport{}
	}

	routingActive := c.config.Routing.FollowPageParam || len(c.config.Routing.ModeTargets) > 0

	return PostureReport{
		TelemetryEnabled:         c.config.Telemetry.Enabled,
		TelemetryBlocking:        c.config.Telemetry.Enabled && !c.config.Telemetry.DropIfFull,
		RawTokenCaptured:         c.config.Telemetry.Enabled && c.config.Telemetry.CaptureRawToken,
		MetricsEnabled:           c.config.Metrics.Enabled,
		LatencyHistogramsEnabled: c.config.Metrics.EnableLatencyHistograms,
		PageFollowEnabled:        c.config.Routing.FollowPageParam,
		SubsidiaryWarmEnabled:    c.config.Session.WarmSubsidiary,
		ModeTargets:              len(c.config.Routing.ModeTargets),
		RoutingActive:            routingActive,
	}
}
