package auth

import (
	"context"
	"net/http"
	"strings"

	"streamview-ads/internal/core/domain"
)

// principalCtxKey is an unexported struct type so no other package can
// collide with or overwrite the context entry.
type principalCtxKey struct{}

// RequireAdmin guards admin routes. It validates the bearer session token
// by signature and expiry only; the guard decision was made at issuance
// time and is trusted until the token expires. On success the principal is
// injected into the request context. Every rejection produces the same
// response so callers learn nothing about why they were denied.
func (i *TokenIssuer) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w)
			return
		}
		p, err := i.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), principalCtxKey{}, *p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromCtx retrieves the principal injected by RequireAdmin. The
// second return is false when the request did not pass the middleware.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(domain.Principal)
	return p, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"success":false,"message":"Unauthorized access"}`))
}
