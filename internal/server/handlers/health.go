package handlers

import (
	"context"
	"net/http"
	"time"
)

// ProbeResponse is the body of both health probes.
type ProbeResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler answers the liveness probe. It always reports healthy; the
// process serving the request is the thing being checked.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// ReadinessHandler answers the readiness probe. The key-value store is the
// only external dependency checked; the service degrades without it but a
// fresh deploy should not take traffic until the store answers.
func (h *Handlers) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	status := "healthy"
	code := http.StatusOK

	if h.Pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.Pinger.Ping(ctx); err != nil {
			checks["kv"] = "unhealthy"
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		} else {
			checks["kv"] = "healthy"
		}
	}

	writeJSON(w, code, ProbeResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}
