package test

import (
	"context"
	"net/http"
	"testing"

	goLaunch "github.com/MrEthical07/goLaunch"
	"github.com/MrEthical07/goLaunch/exchange"
	"github.com/MrEthical07/goLaunch/middleware"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = goLaunch.New

	var _ *goLaunch.Coordinator
	var _ goLaunch.Config
	var _ goLaunch.State
	var _ goLaunch.User
	var _ goLaunch.Request
	var _ goLaunch.Result
	var _ goLaunch.HealthStatus
	var _ goLaunch.MetricsSnapshot
	var _ goLaunch.PostureReport
	var _ goLaunch.Warnings
	var _ goLaunch.TelemetryEvent
	var _ goLaunch.Exchanger = goLaunch.ExchangerFunc(nil)
	var _ goLaunch.SubsidiaryLoader = goLaunch.SubsidiaryLoaderFunc(nil)
	var _ goLaunch.TelemetrySink

	var _ error = goLaunch.ErrCoordinatorNotReady
	var _ error = goLaunch.ErrUnauthenticated
	var _ error = goLaunch.ErrExchangeUnavailable
	var _ error = goLaunch.ErrResponseMalformed
	var _ error = goLaunch.ErrSessionCachePersist
	var _ error = goLaunch.ErrBootstrapPanic

	var _ func(*goLaunch.Coordinator) func(http.Handler) http.Handler = middleware.Bootstrap
	var _ func(*goLaunch.Coordinator) func(http.Handler) http.Handler = middleware.RequireReady
	var _ func(*goLaunch.Coordinator) func(http.Handler) http.Handler = middleware.RequireUser

	var _ func(exchange.Config) (*exchange.HTTP, error) = exchange.NewHTTP

	var _ func(*goLaunch.Coordinator, context.Context) error = (*goLaunch.Coordinator).Initialize
	var _ func(*goLaunch.Coordinator, context.Context) = (*goLaunch.Coordinator).Reinitialize
	var _ func(*goLaunch.Coordinator) goLaunch.State = (*goLaunch.Coordinator).State
	var _ func(*goLaunch.Coordinator, int) (<-chan goLaunch.State, func()) = (*goLaunch.Coordinator).Subscribe
	var _ func(*goLaunch.Coordinator) goLaunch.MetricsSnapshot = (*goLaunch.Coordinator).MetricsSnapshot
	var _ func(*goLaunch.Coordinator) goLaunch.PostureReport = (*goLaunch.Coordinator).PostureReport

	var _ func(context.Context) error = goLaunch.Initialize
	var _ func(context.Context) error = goLaunch.Reinitialize
}
