package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/FlazeIGuess/unitune-worker/internal/core/ratelimit"
)

type clientIPContextKey string

const ClientIPContextKey clientIPContextKey = "client_ip"

// ClientIP resolves the caller's address from proxy headers and stores it in
// the request context. Header precedence: CF-Connecting-IP, then the first
// entry of X-Forwarded-For, then X-Real-IP. When none yields an address the
// sentinel "unknown" is used, so all such requests share one rate bucket.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPContextKey, ResolveClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResolveClientIP extracts the client address from the request headers.
func ResolveClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// The first entry is the originating client; later entries are proxies.
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return ratelimit.UnknownClient
}

// GetClientIP retrieves the resolved client address from context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPContextKey).(string); ok && ip != "" {
		return ip
	}
	return ratelimit.UnknownClient
}
