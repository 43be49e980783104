package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"streamview-ads/internal/core/port"
)

// envelope is the uniform response shape. Every handler answers with it;
// nothing is ever thrown past the HTTP boundary.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) respondData(w http.ResponseWriter, status int, data any) {
	h.respond(w, status, envelope{Success: true, Data: data})
}

// respondError maps the error taxonomy to status codes: validation → 400,
// unauthorized → 401, not found → 404, anything else → 500 with a generic
// message. Store-level detail is logged, never sent to the client.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrValidation):
		h.respond(w, http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, port.ErrUnauthorized):
		h.respond(w, http.StatusUnauthorized, envelope{Success: false, Message: "Unauthorized access"})
	case errors.Is(err, port.ErrAdNotFound):
		h.respond(w, http.StatusNotFound, envelope{Success: false, Message: "ad not found"})
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		h.respond(w, http.StatusInternalServerError, envelope{Success: false, Message: "internal error"})
	}
}
