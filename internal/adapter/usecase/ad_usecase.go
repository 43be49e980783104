package usecase

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

// AdService provides the business logic of the ad subsystem: input
// validation, eligibility filtering, selection and click accounting. It
// implements port.AdUseCase on top of an AdRepository.
type AdService struct {
	repo   port.AdRepository
	logger *slog.Logger

	// now and intn are injection points for tests; they default to the
	// wall clock and math/rand.
	now  func() time.Time
	intn func(n int) int
}

// NewAdService creates a new service with the provided repository.
func NewAdService(repo port.AdRepository, logger *slog.Logger) *AdService {
	return &AdService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

// ListAll returns every ad for the admin dashboard.
func (s *AdService) ListAll(ctx context.Context) ([]domain.Ad, error) {
	return s.repo.ListAll(ctx)
}

// ListActiveByPosition returns the currently eligible ads for a position.
func (s *AdService) ListActiveByPosition(ctx context.Context, pos domain.Position) ([]domain.Ad, error) {
	if !pos.Valid() {
		return nil, port.ValidationError("invalid position %q", pos)
	}
	return s.repo.ListActiveByPosition(ctx, pos, s.now())
}

// ServeAd chooses one ad to render for a single-slot placement. Inline
// banner slots pick uniformly at random among the eligible set; the
// sidebar slot cycles through the eligible list in order, advancing every
// rotation interval, so repeated polls walk the full set. Zero eligible
// ads yield nil with no error.
func (s *AdService) ServeAd(ctx context.Context, pos domain.Position) (*domain.Ad, error) {
	ads, err := s.ListActiveByPosition(ctx, pos)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, nil
	}
	if pos == domain.PositionSidebar {
		return rotate(ads, s.now()), nil
	}
	return &ads[s.intn(len(ads))], nil
}

// Create validates the required fields and inserts a new ad.
func (s *AdService) Create(ctx context.Context, params port.CreateAdParams) (*domain.Ad, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, port.ValidationError("title is required")
	}
	if strings.TrimSpace(params.ImageURL) == "" {
		return nil, port.ValidationError("image_url is required")
	}
	if !params.Position.Valid() {
		return nil, port.ValidationError("invalid position %q", params.Position)
	}
	params.LinkURL = normalizeURL(params.LinkURL)
	return s.repo.Create(ctx, params)
}

// Update applies a partial update after validating the touched fields.
// Required columns must not be cleared or emptied. An explicitly emptied
// link URL is normalized to cleared so the store holds NULL rather than
// the empty string. A patch touching only is_active goes through the
// toggle path so no other column is rewritten.
func (s *AdService) Update(ctx context.Context, id string, patch port.AdPatch) (*domain.Ad, error) {
	if patch.Empty() {
		return nil, port.ValidationError("no fields to update")
	}
	if patch.Title.Cleared() {
		return nil, port.ValidationError("title cannot be cleared")
	}
	if v, ok := patch.Title.Value(); ok && strings.TrimSpace(v) == "" {
		return nil, port.ValidationError("title cannot be empty")
	}
	if patch.ImageURL.Cleared() {
		return nil, port.ValidationError("image_url cannot be cleared")
	}
	if v, ok := patch.ImageURL.Value(); ok && strings.TrimSpace(v) == "" {
		return nil, port.ValidationError("image_url cannot be empty")
	}
	if patch.Position.Cleared() {
		return nil, port.ValidationError("position cannot be cleared")
	}
	if v, ok := patch.Position.Value(); ok && !v.Valid() {
		return nil, port.ValidationError("invalid position %q", v)
	}
	if patch.IsActive.Cleared() {
		return nil, port.ValidationError("is_active cannot be cleared")
	}
	if v, ok := patch.LinkURL.Value(); ok && strings.TrimSpace(v) == "" {
		patch.LinkURL = domain.Clear[string]()
	}

	if active, ok := patch.IsActive.Value(); ok && onlyActiveTouched(patch) {
		return s.repo.SetActive(ctx, id, active)
	}
	return s.repo.Update(ctx, id, patch)
}

func onlyActiveTouched(p port.AdPatch) bool {
	return p.IsActive.Present() && !p.Title.Present() && !p.ImageURL.Present() &&
		!p.LinkURL.Present() && !p.Position.Present() && !p.EndDate.Present()
}

// Delete permanently removes the ad.
func (s *AdService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// RecordClick increments the ad's click counter. The increment is issued
// independently of the visitor's navigation and a failure is logged rather
// than propagated as a hard error; unknown ids are a silent success at the
// repository level.
func (s *AdService) RecordClick(ctx context.Context, id string) error {
	if err := s.repo.IncrementClicks(ctx, id); err != nil {
		s.logger.Error("click accounting failed", slog.String("ad_id", id), slog.Any("error", err))
		return err
	}
	return nil
}

// Stats returns aggregated usage counts for the admin dashboard.
func (s *AdService) Stats(ctx context.Context) (*port.StatsResp, error) {
	return s.repo.Stats(ctx)
}

func normalizeURL(u *string) *string {
	if u != nil && strings.TrimSpace(*u) == "" {
		return nil
	}
	return u
}
