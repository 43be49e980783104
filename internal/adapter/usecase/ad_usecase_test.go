package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
	"streamview-ads/internal/core/port/mocks"
)

func newTestService(t *testing.T) (*AdService, *mocks.MockAdRepository) {
	repo := mocks.NewMockAdRepository(t)
	svc := NewAdService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, repo
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name   string
		params port.CreateAdParams
	}{
		{"missing title", port.CreateAdParams{ImageURL: "https://x/img.png", Position: domain.PositionTop}},
		{"blank title", port.CreateAdParams{Title: "  ", ImageURL: "https://x/img.png", Position: domain.PositionTop}},
		{"missing image_url", port.CreateAdParams{Title: "Promo", Position: domain.PositionTop}},
		{"missing position", port.CreateAdParams{Title: "Promo", ImageURL: "https://x/img.png"}},
		{"bogus position", port.CreateAdParams{Title: "Promo", ImageURL: "https://x/img.png", Position: "header"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository expectation is registered, so any insert
			// attempt fails the test: validation must write nothing
			ad, err := svc.Create(context.Background(), tt.params)
			assert.Nil(t, ad)
			assert.ErrorIs(t, err, port.ErrValidation)
		})
	}
}

func TestCreateNormalizesEmptyLinkURL(t *testing.T) {
	svc, repo := newTestService(t)

	empty := ""
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("port.CreateAdParams")).
		Run(func(ctx context.Context, params port.CreateAdParams) {
			assert.Nil(t, params.LinkURL, "empty link_url must be stored as NULL")
		}).
		Return(&domain.Ad{ID: "ad-1", Title: "Promo"}, nil)

	ad, err := svc.Create(context.Background(), port.CreateAdParams{
		Title:    "Promo",
		ImageURL: "https://x/img.png",
		Position: domain.PositionTop,
		LinkURL:  &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "ad-1", ad.ID)
}

func TestListActiveByPositionRejectsInvalidPosition(t *testing.T) {
	svc, _ := newTestService(t)

	ads, err := svc.ListActiveByPosition(context.Background(), "banner")
	assert.Nil(t, ads)
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestServeAdNoneEligible(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().
		ListActiveByPosition(mock.Anything, domain.PositionTop, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	ad, err := svc.ServeAd(context.Background(), domain.PositionTop)
	require.NoError(t, err)
	assert.Nil(t, ad)
}

func TestServeAdRandomPick(t *testing.T) {
	svc, repo := newTestService(t)

	eligible := []domain.Ad{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	repo.EXPECT().
		ListActiveByPosition(mock.Anything, domain.PositionMiddle, mock.AnythingOfType("time.Time")).
		Return(eligible, nil)

	svc.intn = func(n int) int {
		assert.Equal(t, 3, n)
		return 1
	}
	ad, err := svc.ServeAd(context.Background(), domain.PositionMiddle)
	require.NoError(t, err)
	assert.Equal(t, "b", ad.ID)
}

func TestServeAdSidebarRotates(t *testing.T) {
	svc, repo := newTestService(t)

	eligible := []domain.Ad{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	repo.EXPECT().
		ListActiveByPosition(mock.Anything, domain.PositionSidebar, mock.AnythingOfType("time.Time")).
		Return(eligible, nil)

	base := time.Unix(0, 0)
	var served []string
	// four consecutive rotation windows: the list is walked in order and
	// wraps around after the last ad
	for i := 0; i < 4; i++ {
		now := base.Add(time.Duration(i) * RotationInterval)
		svc.now = func() time.Time { return now }
		ad, err := svc.ServeAd(context.Background(), domain.PositionSidebar)
		require.NoError(t, err)
		served = append(served, ad.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "a"}, served)
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		patch port.AdPatch
	}{
		{"empty patch", port.AdPatch{}},
		{"cleared title", port.AdPatch{Title: domain.Clear[string]()}},
		{"blank title", port.AdPatch{Title: domain.Set(" ")}},
		{"cleared image_url", port.AdPatch{ImageURL: domain.Clear[string]()}},
		{"cleared position", port.AdPatch{Position: domain.Clear[domain.Position]()}},
		{"bogus position", port.AdPatch{Position: domain.Set(domain.Position("footer"))}},
		{"cleared is_active", port.AdPatch{IsActive: domain.Clear[bool]()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad, err := svc.Update(context.Background(), "ad-1", tt.patch)
			assert.Nil(t, ad)
			assert.ErrorIs(t, err, port.ErrValidation)
		})
	}
}

func TestUpdateNormalizesEmptyLinkURL(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().
		Update(mock.Anything, "ad-1", mock.AnythingOfType("port.AdPatch")).
		Run(func(ctx context.Context, id string, patch port.AdPatch) {
			assert.True(t, patch.LinkURL.Cleared(), "explicit empty link_url must clear the column")
		}).
		Return(&domain.Ad{ID: "ad-1"}, nil)

	patch := port.AdPatch{
		Title:   domain.Set("Promo"),
		LinkURL: domain.Set(""),
	}
	_, err := svc.Update(context.Background(), "ad-1", patch)
	require.NoError(t, err)
}

func TestUpdateActiveOnlyUsesTogglePath(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().
		SetActive(mock.Anything, "ad-1", false).
		Return(&domain.Ad{ID: "ad-1", IsActive: false}, nil)

	ad, err := svc.Update(context.Background(), "ad-1", port.AdPatch{IsActive: domain.Set(false)})
	require.NoError(t, err)
	assert.False(t, ad.IsActive)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateNotFound(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().
		Update(mock.Anything, "missing", mock.AnythingOfType("port.AdPatch")).
		Return(nil, port.ErrAdNotFound)

	_, err := svc.Update(context.Background(), "missing", port.AdPatch{Title: domain.Set("x")})
	assert.ErrorIs(t, err, port.ErrAdNotFound)
}

func TestRecordClickSequential(t *testing.T) {
	svc, repo := newTestService(t)

	var count int64
	repo.EXPECT().
		IncrementClicks(mock.Anything, "ad-1").
		Run(func(ctx context.Context, id string) { count++ }).
		Return(nil)

	// two strictly sequential clicks add exactly two
	require.NoError(t, svc.RecordClick(context.Background(), "ad-1"))
	require.NoError(t, svc.RecordClick(context.Background(), "ad-1"))
	assert.Equal(t, int64(2), count)
}

func TestRecordClickUnknownIDIsSuccess(t *testing.T) {
	svc, repo := newTestService(t)

	// the repository treats a missing row as a no-op, not an error
	repo.EXPECT().
		IncrementClicks(mock.Anything, "ghost").
		Return(nil)

	assert.NoError(t, svc.RecordClick(context.Background(), "ghost"))
}

func TestRecordClickPropagatesStoreError(t *testing.T) {
	svc, repo := newTestService(t)

	storeErr := errors.New("connection reset")
	repo.EXPECT().
		IncrementClicks(mock.Anything, "ad-1").
		Return(storeErr)

	assert.ErrorIs(t, svc.RecordClick(context.Background(), "ad-1"), storeErr)
}

func TestDeleteDelegates(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().Delete(mock.Anything, "ad-1").Return(nil).Once()
	require.NoError(t, svc.Delete(context.Background(), "ad-1"))

	// deleting the same id again surfaces not-found from the store
	repo.EXPECT().Delete(mock.Anything, "ad-1").Return(port.ErrAdNotFound).Once()
	assert.ErrorIs(t, svc.Delete(context.Background(), "ad-1"), port.ErrAdNotFound)
}
