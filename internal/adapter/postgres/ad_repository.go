package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

const adColumns = `id, title, image_url, link_url, position, is_active, end_date, click_count, created_at, updated_at`

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

func scanAd(row pgx.CollectableRow) (domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.ImageURL,
		&a.LinkURL,
		&a.Position,
		&a.IsActive,
		&a.EndDate,
		&a.ClickCount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// ListAll returns every ad ordered by creation time descending.
func (r *AdRepository) ListAll(ctx context.Context) ([]domain.Ad, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM ads ORDER BY created_at DESC`, adColumns))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

// ListActiveByPosition returns eligible ads for a position: active and
// either without expiry or expiring at or after the given instant.
func (r *AdRepository) ListActiveByPosition(ctx context.Context, pos domain.Position, now time.Time) ([]domain.Ad, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM ads
        WHERE position = $1
          AND is_active
          AND (end_date IS NULL OR end_date >= $2)
        ORDER BY created_at DESC`, adColumns)
	rows, err := r.pool.Query(ctx, query, pos, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAd)
}

// GetByID returns a single ad by id.
func (r *AdRepository) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM ads WHERE id = $1`, adColumns), id)
	if err != nil {
		return nil, err
	}
	ad, err := pgx.CollectOneRow(rows, scanAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// Create inserts a new ad. The database assigns the id and timestamps;
// click_count starts at zero.
func (r *AdRepository) Create(ctx context.Context, params port.CreateAdParams) (*domain.Ad, error) {
	active := true
	if params.IsActive != nil {
		active = *params.IsActive
	}
	query := fmt.Sprintf(`
        INSERT INTO ads (title, image_url, link_url, position, is_active, end_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING %s`, adColumns)
	rows, err := r.pool.Query(ctx, query,
		params.Title, params.ImageURL, params.LinkURL, params.Position, active, params.EndDate)
	if err != nil {
		return nil, err
	}
	ad, err := pgx.CollectOneRow(rows, scanAd)
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// Update builds a SET list from only the fields present in the patch. A
// cleared optional column is written as NULL. Zero matched rows map to
// port.ErrAdNotFound.
func (r *AdRepository) Update(ctx context.Context, id string, patch port.AdPatch) (*domain.Ad, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if v, ok := patch.Title.Value(); ok {
		set("title", v)
	}
	if v, ok := patch.ImageURL.Value(); ok {
		set("image_url", v)
	}
	switch v, ok := patch.LinkURL.Value(); {
	case ok:
		set("link_url", v)
	case patch.LinkURL.Cleared():
		sets = append(sets, "link_url = NULL")
	}
	if v, ok := patch.Position.Value(); ok {
		set("position", v)
	}
	if v, ok := patch.IsActive.Value(); ok {
		set("is_active", v)
	}
	switch v, ok := patch.EndDate.Value(); {
	case ok:
		set("end_date", v)
	case patch.EndDate.Cleared():
		sets = append(sets, "end_date = NULL")
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE ads SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), adColumns)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	ad, err := pgx.CollectOneRow(rows, scanAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// Delete removes the row permanently.
func (r *AdRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrAdNotFound
	}
	return nil
}

// SetActive toggles only the is_active flag.
func (r *AdRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Ad, error) {
	query := fmt.Sprintf(`UPDATE ads SET is_active = $1, updated_at = now() WHERE id = $2 RETURNING %s`, adColumns)
	rows, err := r.pool.Query(ctx, query, active, id)
	if err != nil {
		return nil, err
	}
	ad, err := pgx.CollectOneRow(rows, scanAd)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// IncrementClicks adds one to click_count in a single atomic UPDATE. A
// non-matching id affects zero rows and is not an error.
func (r *AdRepository) IncrementClicks(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE ads SET click_count = click_count + 1, updated_at = now() WHERE id = $1`, id)
	return err
}

// Stats returns aggregated counts across the ads table.
func (r *AdRepository) Stats(ctx context.Context) (*port.StatsResp, error) {
	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, `
        SELECT count(*),
               count(*) FILTER (WHERE is_active),
               COALESCE(sum(click_count), 0)
        FROM ads`).Scan(&resp.TotalAds, &resp.ActiveAds, &resp.TotalClicks)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT position, COALESCE(sum(click_count), 0) FROM ads GROUP BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	resp.ClicksByPosition = make(map[domain.Position]int64)
	for rows.Next() {
		var (
			pos    domain.Position
			clicks int64
		)
		if err = rows.Scan(&pos, &clicks); err != nil {
			return nil, err
		}
		resp.ClicksByPosition[pos] = clicks
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return &resp, nil
}
