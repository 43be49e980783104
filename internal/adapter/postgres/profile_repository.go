package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

// ProfileRepository implements port.ProfileRepository over the profiles table.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetByEmail returns the profile for the email or port.ErrProfileNotFound.
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, is_admin, created_at FROM profiles WHERE email = $1`, email).
		Scan(&p.ID, &p.Email, &p.IsAdmin, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
