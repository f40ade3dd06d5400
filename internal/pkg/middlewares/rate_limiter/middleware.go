package rate_limiter

import (
	"net/http"
	"strconv"

	"ordertracker/internal/pkg/middlewares/metrics"
	"ordertracker/pkg/logger"
)

const tooManyRequestsBody = `{"error":"rate limit exceeded, try again later"}`

// Middleware rejects requests with 429 once the shared limiter runs dry.
// limitQPS is only advertised in X-RateLimit-Limit.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(tooManyRequestsBody)); err != nil {
				log.With(logger.NewField("error", err)).Error("write rate limit response")
			}
		})
	}
}
