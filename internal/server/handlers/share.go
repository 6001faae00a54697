package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/FlazeIGuess/unitune-worker/internal/botdetect"
	"github.com/FlazeIGuess/unitune-worker/internal/core/metadata"
	"github.com/FlazeIGuess/unitune-worker/internal/core/sharelink"
	"github.com/FlazeIGuess/unitune-worker/internal/observability"
	"github.com/FlazeIGuess/unitune-worker/internal/render"
	"github.com/FlazeIGuess/unitune-worker/internal/server/middleware"
)

// ShareHandler serves /s/{identifier}. Crawlers get the fully rendered page
// for link previews; browsers get the shell that re-fetches metadata through
// /api/song.
func (h *Handlers) ShareHandler(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")

	musicURL, err := sharelink.Decode(identifier)
	if err != nil {
		if errors.Is(err, sharelink.ErrUnsupportedPlatform) {
			h.ErrorPage(w, r, http.StatusNotFound)
			return
		}
		h.ErrorPage(w, r, http.StatusBadRequest)
		return
	}

	raw := h.Resolver.Resolve(r.Context(), musicURL, identifier)
	if raw == nil {
		h.ErrorPage(w, r, http.StatusNotFound)
		return
	}

	song, err := metadata.ParseSong(raw)
	if err != nil {
		if observability.ServerLogger != nil {
			observability.ServerLogger.Warn("Upstream song payload did not parse",
				zap.Error(err),
				zap.String("identifier", identifier),
				zap.String("requestID", middleware.GetRequestID(r.Context())))
		}
		h.ErrorPage(w, r, http.StatusNotFound)
		return
	}

	view := render.SongView(song, h.SiteURL+"/s/"+identifier, musicURL)

	w.Header().Set("Content-Type", htmlContentType)
	if botdetect.IsBot(r.UserAgent()) {
		if err := h.Renderer.Page(w, view); err != nil {
			h.logRenderError(r, err)
		}
		return
	}

	if err := h.Renderer.Shell(w, view); err != nil {
		h.logRenderError(r, err)
	}
}
