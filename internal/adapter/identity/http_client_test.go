package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamview-ads/internal/core/port"
)

func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"u-1","email":"admin@example.com"}`))
		case "Bearer anonymous":
			w.Write([]byte(`{"id":"","email":""}`))
		case "Bearer flaky":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	p, err := c.Resolve(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.ID)
	assert.Equal(t, "admin@example.com", p.Email)

	_, err = c.Resolve(ctx, "expired")
	assert.ErrorIs(t, err, port.ErrUnauthorized)

	// a 200 without an email is still not a usable identity
	_, err = c.Resolve(ctx, "anonymous")
	assert.ErrorIs(t, err, port.ErrUnauthorized)

	// unexpected upstream statuses surface as plain errors, not denials
	_, err = c.Resolve(ctx, "flaky")
	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrUnauthorized)
}

func TestResolveProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Resolve(context.Background(), "good")
	require.Error(t, err)
}
