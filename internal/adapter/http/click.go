package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleAdClick records a click on a served ad. The route is intentionally
// public: any visitor may record a click, and the response is always 200
// so the click never interferes with the visitor's navigation. The body
// carries a success flag; an internal failure flips it to false without an
// error status. Unknown ids are a silent success.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RecordClick(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respond(w, http.StatusOK, envelope{Success: false, Message: "failed to record click"})
		return
	}
	h.respond(w, http.StatusOK, envelope{Success: true})
}
