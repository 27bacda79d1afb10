// Package prometheus provides Prometheus collectors for goLaunch metrics.
//
// [NewPrometheusExporter] accepts a [goLaunch.Coordinator] and exposes an [http.Handler]
// that renders all goLaunch counters and histograms in Prometheus text exposition format.
// Counter names are prefixed golaunch_*_total; the single histogram is
// golaunch_exchange_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry (callers mount the Handler).
//   - Mutate coordinator state.
package prometheus
