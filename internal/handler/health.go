package handler

import (
	"net/http"

	"github.com/kolecko-ai/travel-assistant/internal/catalog"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	deals *catalog.DealStore
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deals *catalog.DealStore) *HealthHandler {
	return &HealthHandler{
		deals: deals,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	// The assistant cannot answer without an offer catalog.
	if h.deals == nil || h.deals.Size() == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "deal catalog is empty",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
