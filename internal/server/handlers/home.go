package handlers

import "net/http"

// HomeHandler serves the landing page.
func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", htmlContentType)
	if err := h.Renderer.Home(w); err != nil {
		h.logRenderError(r, err)
	}
}
