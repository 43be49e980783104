package port

import (
	"context"
	"errors"

	"streamview-ads/internal/core/domain"
)

// ErrProfileNotFound is returned when no profile row matches the lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads the persisted profile records backing the
// database half of the access guard.
type ProfileRepository interface {
	// GetByEmail returns the profile for the email or ErrProfileNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
}
