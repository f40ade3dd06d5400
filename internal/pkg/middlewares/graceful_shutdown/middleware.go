package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware turns new requests away with 503 once shutdown has begun.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(`{"error":"service is shutting down"}`))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
