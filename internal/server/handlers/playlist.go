package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FlazeIGuess/unitune-worker/internal/core/metadata"
	"github.com/FlazeIGuess/unitune-worker/internal/render"
)

// PlaylistHandler serves /p/{playlistID}. Playlist lookups are not cached:
// their contents change under the same id, and traffic is a fraction of the
// song path.
func (h *Handlers) PlaylistHandler(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "playlistID")
	if playlistID == "" {
		h.ErrorPage(w, r, http.StatusBadRequest)
		return
	}

	raw, err := h.Client.FetchPlaylist(r.Context(), playlistID)
	if err != nil {
		h.ErrorPage(w, r, http.StatusNotFound)
		return
	}

	playlist, err := metadata.ParsePlaylist(raw)
	if err != nil {
		h.ErrorPage(w, r, http.StatusNotFound)
		return
	}

	view := render.PageView{
		Title:        playlist.Title,
		Artist:       playlist.Creator,
		Thumbnail:    playlist.Thumbnail,
		CanonicalURL: h.SiteURL + "/p/" + playlistID,
		MusicURL:     playlist.PageURL,
		OGType:       "music.playlist",
	}

	// The shell's re-fetch script only knows the song endpoint, so playlists
	// are fully server-rendered for every caller.
	w.Header().Set("Content-Type", htmlContentType)
	if err := h.Renderer.Page(w, view); err != nil {
		h.logRenderError(r, err)
	}
}
