package middleware

import (
	"context"
	"net/http"

	goLaunch "github.com/MrEthical07/goLaunch"
)

type sessionStateContextKey struct{}

func SessionFromContext(ctx context.Context) (goLaunch.State, bool) {
	state, ok := ctx.Value(sessionStateContextKey{}).(goLaunch.State)
	return state, ok
}

func Bootstrap(coordinator *goLaunch.Coordinator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if coordinator == nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			if err := coordinator.Initialize(r.Context()); err != nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			ctx := context.WithValue(r.Context(), sessionStateContextKey{}, coordinator.State())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireReady(coordinator *goLaunch.Coordinator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if coordinator == nil {
				http.Error(w, "session not ready", http.StatusServiceUnavailable)
				return
			}

			// Ready survives a reinitialize in flight, so a refresh does not
			// blank routes that were already serving the previous session.
			state := coordinator.State()
			if !state.Ready {
				http.Error(w, "session not ready", http.StatusServiceUnavailable)
				return
			}

			ctx := context.WithValue(r.Context(), sessionStateContextKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
