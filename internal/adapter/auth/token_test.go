package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

const testSecret = "test-secret-at-least-32-chars-long"

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	p := domain.Principal{ID: "u-1", Email: "admin@example.com"}

	token, expiresAt, err := issuer.Issue(p)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, p, *got)
}

func TestTokenExpiry(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	token, _, err := issuer.Issue(domain.Principal{Email: "admin@example.com"})
	require.NoError(t, err)

	// move the verifier's clock past the expiry
	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	token, _, err := issuer.Issue(domain.Principal{Email: "admin@example.com"})
	require.NoError(t, err)

	other := NewTokenIssuer("a-completely-different-signing-key", time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, port.ErrUnauthorized, "token %q", tok)
	}
}

func TestRequireAdmin(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromCtx(r.Context())
		require.True(t, ok, "principal must be injected")
		assert.Equal(t, "admin@example.com", p.Email)
		w.WriteHeader(http.StatusOK)
	})
	mw := issuer.RequireAdmin(okHandler)

	valid, _, err := issuer.Issue(domain.Principal{ID: "u-1", Email: "admin@example.com"})
	require.NoError(t, err)

	forged, _, err := NewTokenIssuer("attacker-controlled-secret-value", time.Hour).
		Issue(domain.Principal{Email: "admin@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing Authorization header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"forged signature", "Bearer " + forged, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
