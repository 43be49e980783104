package port

import (
	"context"
	"errors"
	"fmt"

	"streamview-ads/internal/core/domain"
)

// ErrValidation marks missing or malformed input on create/update. It is
// wrapped with field detail and surfaces as HTTP 400.
var ErrValidation = errors.New("validation failed")

// ValidationError wraps ErrValidation with a human-readable field message.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// AdUseCase defines the business operations of the ad subsystem. This
// interface is the primary inbound port; mock implementations are generated
// from it for handler tests. Authorization is enforced at the HTTP boundary
// before any mutating method is reached.
type AdUseCase interface {
	// ListAll returns every ad for the admin dashboard.
	ListAll(ctx context.Context) ([]domain.Ad, error)

	// ListActiveByPosition returns the currently eligible ads for a page
	// position. An invalid position is a validation error.
	ListActiveByPosition(ctx context.Context, pos domain.Position) ([]domain.Ad, error)

	// ServeAd picks one ad uniformly at random among the eligible set for
	// the position. It returns nil when nothing is eligible; the caller
	// renders nothing in that case.
	ServeAd(ctx context.Context, pos domain.Position) (*domain.Ad, error)

	// Create validates the required fields and inserts a new ad. IsActive
	// defaults to true when unspecified and click_count starts at zero.
	Create(ctx context.Context, params CreateAdParams) (*domain.Ad, error)

	// Update applies a partial update. Fields absent from the patch are
	// left untouched; an explicitly emptied link URL is stored as NULL.
	// A patch touching only is_active is routed through the toggle path
	// so no other column is rewritten.
	Update(ctx context.Context, id string, patch AdPatch) (*domain.Ad, error)

	// Delete permanently removes the ad.
	Delete(ctx context.Context, id string) error

	// RecordClick increments the ad's click counter. Unknown ids are
	// treated as success so the visitor's navigation never fails.
	RecordClick(ctx context.Context, id string) error

	// Stats returns aggregated usage counts for the admin dashboard.
	Stats(ctx context.Context) (*StatsResp, error)
}
