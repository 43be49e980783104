package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"streamview-ads/internal/adapter/auth"
	"streamview-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the ad usecase, the access guard, the identity provider and the
// session token issuer, plus a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.AdUseCase
	guard    port.Authorizer
	identity port.IdentityProvider
	tokens   *auth.TokenIssuer
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Public routes
// (eligible-ad reads, serving, click accounting) carry no authorization;
// admin routes sit behind the session token middleware. The full admin
// listing on GET /ads shares its path with the public filtered read, so
// its authorization check lives in the handler rather than the middleware.
func NewHandler(svc port.AdUseCase, guard port.Authorizer, identity port.IdentityProvider, tokens *auth.TokenIssuer, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, guard: guard, identity: identity, tokens: tokens, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/token", h.handleIssueToken)

		r.Get("/ads", h.handleListAds)
		r.Get("/ads/serve", h.handleServeAd)
		r.Patch("/ads/{id}", h.handleAdClick)

		r.Group(func(r chi.Router) {
			r.Use(tokens.RequireAdmin)
			r.Post("/ads", h.handleCreateAd)
			r.Put("/ads/{id}", h.handleUpdateAd)
			r.Delete("/ads/{id}", h.handleDeleteAd)
			r.Get("/stats/overview", h.handleStatsOverview)
		})
	})
	r.Get("/health", h.handleHealth)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}
