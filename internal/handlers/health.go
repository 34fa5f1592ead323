package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthResponse reports whether the database is reachable
type HealthResponse struct {
	Status string `json:"status"`
}

// GetHealth handles GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.healthChecker.PingContext(pingCtx); err != nil {
		h.logger.Error("health check failed: database unreachable", "error", err)
		h.writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		return
	}

	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}
