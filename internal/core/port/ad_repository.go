package port

import (
	"context"
	"errors"
	"time"

	"streamview-ads/internal/core/domain"
)

// ErrAdNotFound is returned by repository methods when no ad row matches
// the given id. IncrementClicks intentionally never returns it.
var ErrAdNotFound = errors.New("ad not found")

// AdRepository defines the persistence layer for banner ads. It is an
// outbound port in hexagonal architecture and the only component permitted
// to touch the ads table. Implementations must be concurrency-safe and
// perform click increments atomically at the store.
type AdRepository interface {
	// ListAll returns every ad ordered by creation time descending.
	ListAll(ctx context.Context) ([]domain.Ad, error)
	// ListActiveByPosition returns ads for the position that are active
	// and not past their expiry at the given instant, ordered by creation
	// time descending. This is the public read path.
	ListActiveByPosition(ctx context.Context, pos domain.Position, now time.Time) ([]domain.Ad, error)
	// GetByID returns a single ad or ErrAdNotFound.
	GetByID(ctx context.Context, id string) (*domain.Ad, error)
	// Create inserts a new ad and returns the stored row.
	Create(ctx context.Context, params CreateAdParams) (*domain.Ad, error)
	// Update applies only the fields present in the patch and returns the
	// updated row. A non-matching id yields ErrAdNotFound.
	Update(ctx context.Context, id string, patch AdPatch) (*domain.Ad, error)
	// Delete removes the row permanently. A non-matching id yields
	// ErrAdNotFound.
	Delete(ctx context.Context, id string) error
	// SetActive sets only the is_active flag and returns the updated row.
	SetActive(ctx context.Context, id string, active bool) (*domain.Ad, error)
	// IncrementClicks atomically adds one to click_count. A non-matching
	// id is a silent no-op so the user-facing redirect flow never fails.
	IncrementClicks(ctx context.Context, id string) error
	// Stats returns aggregated counts for the admin dashboard.
	Stats(ctx context.Context) (*StatsResp, error)
}

// CreateAdParams carries the fields accepted at ad creation. IsActive
// defaults to true when nil; LinkURL and EndDate remain NULL when nil.
type CreateAdParams struct {
	Title    string
	ImageURL string
	LinkURL  *string
	Position domain.Position
	IsActive *bool
	EndDate  *time.Time
}

// AdPatch describes a partial update. Each field is a tagged optional:
// absent fields are left untouched, cleared fields are stored as NULL.
// Title, ImageURL, Position and IsActive are required columns and must
// not be cleared; the usecase rejects such patches before they reach the
// repository.
type AdPatch struct {
	Title    domain.Field[string]          `json:"title"`
	ImageURL domain.Field[string]          `json:"image_url"`
	LinkURL  domain.Field[string]          `json:"link_url"`
	Position domain.Field[domain.Position] `json:"position"`
	IsActive domain.Field[bool]            `json:"is_active"`
	EndDate  domain.Field[time.Time]       `json:"end_date"`
}

// Empty reports whether the patch touches no fields at all.
func (p AdPatch) Empty() bool {
	return !p.Title.Present() && !p.ImageURL.Present() && !p.LinkURL.Present() &&
		!p.Position.Present() && !p.IsActive.Present() && !p.EndDate.Present()
}

// StatsResp contains aggregated counts for the admin dashboard. ClicksByPosition
// maps each enumerated position to the total clicks its ads collected.
type StatsResp struct {
	TotalAds         int64                      `json:"total_ads"`
	ActiveAds        int64                      `json:"active_ads"`
	TotalClicks      int64                      `json:"total_clicks"`
	ClicksByPosition map[domain.Position]int64  `json:"clicks_by_position"`
}
