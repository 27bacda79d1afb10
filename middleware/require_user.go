package middleware

import (
	"context"
	"net/http"

	goLaunch "github.com/MrEthical07/goLaunch"
)

// RequireUser returns middleware that rejects requests while the session has
// no authenticated user. Guest sessions get 401; an in-flight run that still
// carries the previous user passes.
//
//	Docs: docs/middleware.md
func RequireUser(coordinator *goLaunch.Coordinator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if coordinator == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			state := coordinator.State()
			if state.User == nil {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionStateContextKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
