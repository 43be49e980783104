package httpadapter

import (
	"net/http"
)

// handleStatsOverview returns aggregated usage counts for the admin
// dashboard: total and active ads, total clicks, and clicks per position.
// The route sits behind the admin middleware.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondData(w, http.StatusOK, stats)
}
