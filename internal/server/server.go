// Package server wires the HTTP surface: routing, middleware and graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/config"
	"github.com/FlazeIGuess/unitune-worker/internal/core/ratelimit"
	"github.com/FlazeIGuess/unitune-worker/internal/observability"
	"github.com/FlazeIGuess/unitune-worker/internal/server/handlers"
	servermw "github.com/FlazeIGuess/unitune-worker/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	cfg      config.ServerConfig
	limiter  *ratelimit.Limiter
	handlers *handlers.Handlers
}

// New creates a new HTTP server instance
func New(cfg config.ServerConfig, limiter *ratelimit.Limiter, h *handlers.Handlers) *Server {
	r := chi.NewRouter()

	// Middleware order: RequestID first for correlation, metrics around
	// everything else, recovery innermost so panics are logged with both.
	r.Use(servermw.RequestID)
	r.Use(servermw.RequestMetrics)
	r.Use(servermw.SecurityHeaders)
	r.Use(servermw.Recovery(func(w http.ResponseWriter, req *http.Request) {
		h.ErrorPage(w, req, http.StatusInternalServerError)
	}))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		h.ErrorPage(w, req, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		h.ErrorPage(w, req, http.StatusMethodNotAllowed)
	})

	s := &Server{
		router:   r,
		cfg:      cfg,
		limiter:  limiter,
		handlers: h,
	}

	s.registerRoutes()

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  orDefault(s.cfg.ReadTimeout, 30*time.Second),
		WriteTimeout: orDefault(s.cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  orDefault(s.cfg.IdleTimeout, 120*time.Second),
	}

	observability.ServerLogger.Info("Starting HTTP server",
		zap.String("host", s.cfg.Host),
		zap.Int("port", s.cfg.Port),
		zap.String("addr", addr))

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	observability.ServerLogger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying router for testing and instrumentation
func (s *Server) Handler() http.Handler {
	return s.router
}

// Port returns the configured server port
func (s *Server) Port() int {
	return s.cfg.Port
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
