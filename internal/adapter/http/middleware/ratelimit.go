package middleware

import (
	"net/http"

	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
func (m *Middleware) RateLimit(serviceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m.limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.limiter.Allow() {
				metrics.RateLimitedTotal.WithLabelValues(serviceName).Inc()
				w.Header().Set("Retry-After", "1")
				errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
