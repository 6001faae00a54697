package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/observability"
	"github.com/FlazeIGuess/unitune-worker/internal/server/middleware"
)

// SongProxyHandler serves /api/song. It forwards the upstream response
// verbatim, status code included, so the shell script sees exactly what the
// upstream answered. Only the url query parameter crosses the boundary.
func (h *Handlers) SongProxyHandler(w http.ResponseWriter, r *http.Request) {
	musicURL := r.URL.Query().Get("url")
	if musicURL == "" {
		writeJSONError(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	resp, err := h.Client.DoSong(r.Context(), musicURL)
	if err != nil {
		if observability.ServerLogger != nil {
			observability.ServerLogger.Warn("Upstream song request failed",
				zap.Error(err),
				zap.String("requestID", middleware.GetRequestID(r.Context())))
		}
		writeJSONError(w, http.StatusBadGateway, "upstream request failed")
		return
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	w.Header().Set("Access-Control-Allow-Origin", "*")
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
