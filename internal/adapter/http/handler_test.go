package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"streamview-ads/internal/adapter/auth"
	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
	"streamview-ads/internal/core/port/mocks"
)

type handlerFixture struct {
	svc      *mocks.MockAdUseCase
	guard    *mocks.MockAuthorizer
	identity *mocks.MockIdentityProvider
	tokens   *auth.TokenIssuer
	router   http.Handler
}

func newFixture(t *testing.T) *handlerFixture {
	svc := mocks.NewMockAdUseCase(t)
	guard := mocks.NewMockAuthorizer(t)
	identity := mocks.NewMockIdentityProvider(t)
	tokens := auth.NewTokenIssuer("handler-test-signing-secret-0001", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, guard, identity, tokens, logger)
	return &handlerFixture{svc: svc, guard: guard, identity: identity, tokens: tokens, router: h.Router()}
}

func (f *handlerFixture) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := f.tokens.Issue(domain.Principal{ID: "u-1", Email: "admin@example.com"})
	require.NoError(t, err)
	return token
}

func (f *handlerFixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestPublicActiveListing(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ListActiveByPosition(mock.Anything, domain.PositionTop).
		Return([]domain.Ad{{ID: "ad-1", Position: domain.PositionTop, IsActive: true}}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/ads?active=true&position=top", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.True(t, e.Success)
}

func TestPublicActiveListingEmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ListActiveByPosition(mock.Anything, domain.PositionSidebar).
		Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/ads?active=true&position=sidebar", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestPublicActiveListingInvalidPosition(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ListActiveByPosition(mock.Anything, domain.Position("header")).
		Return(nil, port.ValidationError("invalid position %q", "header"))

	rec := f.do(t, http.MethodGet, "/api/v1/ads?active=true&position=header", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicActiveListingDegradesOnStoreError(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ListActiveByPosition(mock.Anything, domain.PositionTop).
		Return(nil, errors.New("connection refused"))

	rec := f.do(t, http.MethodGet, "/api/v1/ads?active=true&position=top", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// the body still carries an empty array so page slots render nothing
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestAdminListingRequiresToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/ads", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/ads", "forged-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminListing(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ListAll(mock.Anything).
		Return([]domain.Ad{{ID: "ad-1"}, {ID: "ad-2"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/ads", f.adminToken(t), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.True(t, e.Success)
}

func TestCreateAd(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("port.CreateAdParams")).
		Run(func(ctx context.Context, params port.CreateAdParams) {
			assert.Equal(t, "Promo", params.Title)
			assert.Equal(t, domain.PositionTop, params.Position)
		}).
		Return(&domain.Ad{ID: "ad-1", Title: "Promo", Position: domain.PositionTop, IsActive: true}, nil)

	body := `{"title":"Promo","image_url":"https://x/img.png","position":"top","is_active":true}`
	rec := f.do(t, http.MethodPost, "/api/v1/ads", f.adminToken(t), body)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateAdValidationFailure(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("port.CreateAdParams")).
		Return(nil, port.ValidationError("title is required"))

	rec := f.do(t, http.MethodPost, "/api/v1/ads", f.adminToken(t), `{"image_url":"https://x/img.png","position":"top"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.False(t, e.Success)
	assert.Contains(t, e.Message, "title")
}

func TestCreateAdInvalidJSON(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/ads", f.adminToken(t), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAdUnauthorized(t *testing.T) {
	f := newFixture(t)
	// middleware rejects before the usecase sees anything
	rec := f.do(t, http.MethodPost, "/api/v1/ads", "", `{"title":"Promo"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.False(t, e.Success)
	assert.Equal(t, "Unauthorized access", e.Message)
}

func TestUpdateAd(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		Update(mock.Anything, "ad-1", mock.AnythingOfType("port.AdPatch")).
		Run(func(ctx context.Context, id string, patch port.AdPatch) {
			title, ok := patch.Title.Value()
			require.True(t, ok)
			assert.Equal(t, "New title", title)
			assert.True(t, patch.LinkURL.Cleared())
			assert.False(t, patch.ImageURL.Present())
		}).
		Return(&domain.Ad{ID: "ad-1", Title: "New title"}, nil)

	rec := f.do(t, http.MethodPut, "/api/v1/ads/ad-1", f.adminToken(t), `{"title":"New title","link_url":null}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateAdNotFound(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		Update(mock.Anything, "missing", mock.AnythingOfType("port.AdPatch")).
		Return(nil, port.ErrAdNotFound)

	rec := f.do(t, http.MethodPut, "/api/v1/ads/missing", f.adminToken(t), `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAd(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().Delete(mock.Anything, "ad-1").Return(nil)

	rec := f.do(t, http.MethodDelete, "/api/v1/ads/ad-1", f.adminToken(t), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestClickAlwaysAnswers200(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().RecordClick(mock.Anything, "ad-1").Return(nil).Once()
	rec := f.do(t, http.MethodPatch, "/api/v1/ads/ad-1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)

	// an internal failure flips the flag but never the status
	f.svc.EXPECT().RecordClick(mock.Anything, "ad-1").Return(errors.New("boom")).Once()
	rec = f.do(t, http.MethodPatch, "/api/v1/ads/ad-1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestServeAd(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ServeAd(mock.Anything, domain.PositionMiddle).
		Return(&domain.Ad{ID: "ad-1", Position: domain.PositionMiddle}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/ads/serve?position=middle", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServeAdNoneEligible(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		ServeAd(mock.Anything, domain.PositionBottom).
		Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/ads/serve?position=bottom", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStatsOverview(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().
		Stats(mock.Anything).
		Return(&port.StatsResp{TotalAds: 4, ActiveAds: 3, TotalClicks: 120}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/stats/overview", f.adminToken(t), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/stats/overview", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIssueToken(t *testing.T) {
	f := newFixture(t)
	p := domain.Principal{ID: "u-1", Email: "admin@example.com"}

	f.identity.EXPECT().Resolve(mock.Anything, "provider-credential").Return(&p, nil)
	f.guard.EXPECT().Authorize(mock.Anything, p).Return(true, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/token", "provider-credential", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	// the issued token opens admin routes
	f.svc.EXPECT().ListAll(mock.Anything).Return(nil, nil)
	rec = f.do(t, http.MethodGet, "/api/v1/ads", resp.Data.Token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIssueTokenDenied(t *testing.T) {
	f := newFixture(t)
	p := domain.Principal{ID: "u-2", Email: "viewer@example.com"}

	f.identity.EXPECT().Resolve(mock.Anything, "viewer-credential").Return(&p, nil)
	f.guard.EXPECT().Authorize(mock.Anything, p).Return(false, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/token", "viewer-credential", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized access", decodeEnvelope(t, rec).Message)
}

func TestIssueTokenIdentityFailure(t *testing.T) {
	f := newFixture(t)

	f.identity.EXPECT().
		Resolve(mock.Anything, "expired-credential").
		Return(nil, port.ErrUnauthorized)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/token", "expired-credential", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// no bearer header at all
	rec = f.do(t, http.MethodPost, "/api/v1/auth/token", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
