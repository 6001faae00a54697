package handlers

import "net/http"

// adsTxt is served verbatim; ad networks crawl it to verify the seller
// relationship for the site.
const adsTxt = "google.com, pub-0000000000000000, DIRECT, f08c47fec0942fa0\n"

// AdsTxtHandler serves /ads.txt for ad-network crawlers.
func (h *Handlers) AdsTxtHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(adsTxt))
}

// WellKnownHandler answers /.well-known/* probes with 204 so automated
// scanners do not generate error-page noise in the logs.
func (h *Handlers) WellKnownHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
