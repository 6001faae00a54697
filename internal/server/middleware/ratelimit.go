package middleware

import (
	"net/http"
	"strconv"

	"github.com/FlazeIGuess/unitune-worker/internal/core/ratelimit"
	"github.com/FlazeIGuess/unitune-worker/internal/observability"
	"go.uber.org/zap"
)

// RateLimitedResponder renders the 429 body. The server injects its HTML
// error renderer here so the middleware stays presentation-agnostic.
type RateLimitedResponder func(w http.ResponseWriter, r *http.Request, d ratelimit.Decision)

// RateLimit enforces the token-bucket limiter on the wrapped routes. Every
// response carries X-RateLimit-Limit and X-RateLimit-Remaining; denials get
// Retry-After and status 429. A nil limiter disables enforcement.
func RateLimit(limiter *ratelimit.Limiter, respond RateLimitedResponder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := GetClientIP(r.Context())
			decision := limiter.Check(r.Context(), clientIP)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(decision.RetryAfter.Seconds())))

				if observability.ServerLogger != nil {
					observability.ServerLogger.Warn("Rate limit exceeded",
						zap.String("client_ip", clientIP),
						zap.String("path", r.URL.Path),
						zap.String("requestID", GetRequestID(r.Context())))
				}

				RecordRateLimited()

				if respond != nil {
					respond(w, r, decision)
					return
				}
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
