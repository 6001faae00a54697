// Package handlers contains the HTTP handlers behind the share-link routes
// and the small JSON API around them.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/config"
	"github.com/FlazeIGuess/unitune-worker/internal/core/metadata"
	"github.com/FlazeIGuess/unitune-worker/internal/observability"
	"github.com/FlazeIGuess/unitune-worker/internal/render"
	"github.com/FlazeIGuess/unitune-worker/internal/server/middleware"
)

// Pinger reports whether the backing key-value store is reachable. The
// readiness probe uses it; a nil Pinger means the server runs storeless.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers bundles the dependencies shared by all routes.
type Handlers struct {
	Resolver  *metadata.Resolver
	Client    *metadata.Client
	Renderer  *render.Renderer
	Pinger    Pinger
	Donations config.DonationsConfig
	SiteURL   string
}

const (
	msgNotFound     = "This link could not be found. It may have expired or never existed."
	msgBadRequest   = "This link is not valid."
	msgUnavailable  = "The music service is temporarily unavailable. Please try again later."
	msgServerError  = "Something went wrong on our side. Please try again later."
	msgRateLimited  = "You sent too many requests. Please wait a moment and try again."
	htmlContentType = "text/html; charset=utf-8"
)

// ErrorPage writes the generic HTML error page for status.
func (h *Handlers) ErrorPage(w http.ResponseWriter, r *http.Request, status int) {
	message := msgServerError
	switch status {
	case http.StatusBadRequest:
		message = msgBadRequest
	case http.StatusNotFound:
		message = msgNotFound
	case http.StatusTooManyRequests:
		message = msgRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		message = msgUnavailable
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	if err := h.Renderer.Error(w, status, message); err != nil {
		h.logRenderError(r, err)
	}
}

func (h *Handlers) logRenderError(r *http.Request, err error) {
	if observability.ServerLogger == nil {
		return
	}
	observability.ServerLogger.Error("Failed to render response",
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("requestID", middleware.GetRequestID(r.Context())))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// jsonError is the envelope JSON endpoints use for failures.
type jsonError struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, jsonError{Error: message})
}
