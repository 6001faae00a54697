package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FlazeIGuess/unitune-worker/internal/core/ratelimit"
	servermw "github.com/FlazeIGuess/unitune-worker/internal/server/middleware"
)

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	h := s.handlers

	// Health and metrics stay outside the rate limiter so probes and
	// scrapers keep working while a client is being throttled.
	s.router.Get("/health", h.HealthHandler)
	s.router.Get("/health/ready", h.ReadinessHandler)
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)

	s.router.Get("/api/version", h.VersionHandler)
	s.router.Get("/api/donations", h.DonationsHandler)
	s.router.Get("/api/song", h.SongProxyHandler)

	s.router.Get("/ads.txt", h.AdsTxtHandler)
	s.router.Get("/.well-known/*", h.WellKnownHandler)

	// User-facing pages carry the client-IP token bucket.
	s.router.Group(func(r chi.Router) {
		r.Use(servermw.ClientIP)
		r.Use(servermw.RateLimit(s.limiter, func(w http.ResponseWriter, req *http.Request, d ratelimit.Decision) {
			h.ErrorPage(w, req, http.StatusTooManyRequests)
		}))

		r.Get("/", h.HomeHandler)
		r.Get("/s/{identifier}", h.ShareHandler)
		r.Get("/p/{playlistID}", h.PlaylistHandler)
	})
}
