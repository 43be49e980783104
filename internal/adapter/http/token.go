package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"streamview-ads/internal/core/port"
)

// tokenResponse is the payload of a successful token exchange.
type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleIssueToken exchanges the external identity provider's bearer
// credential for a short-lived signed admin session token. The guard runs
// once here; admin routes then trust the token until it expires. Every
// failure answers with the same 401 so nothing about the guard's
// reasoning leaks to the caller.
func (h *Handler) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		h.respondError(w, port.ErrUnauthorized)
		return
	}
	principal, err := h.identity.Resolve(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		h.logger.Warn("identity resolution failed", slog.Any("error", err))
		h.respondError(w, port.ErrUnauthorized)
		return
	}
	ok, err := h.guard.Authorize(r.Context(), *principal)
	if err != nil {
		h.logger.Error("authority lookup failed", slog.Any("error", err))
		h.respondError(w, port.ErrUnauthorized)
		return
	}
	if !ok {
		h.respondError(w, port.ErrUnauthorized)
		return
	}
	token, expiresAt, err := h.tokens.Issue(*principal)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondData(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: expiresAt})
}
