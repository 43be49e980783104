package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo banner and profile rows for local development. Each
// position gets a handful of banners in mixed states: active, inactive and
// already expired, so every filter path has data to show.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	positions := []string{"top", "middle", "bottom", "sidebar"}
	for _, pos := range positions {
		for i := 1; i <= 4; i++ {
			title := fmt.Sprintf("%s banner %d", pos, i)
			imageURL := fmt.Sprintf("https://example.com/banners/%s-%d.png", pos, i)
			var linkURL *string
			if i%2 == 0 {
				u := fmt.Sprintf("https://example.com/promo/%s-%d", pos, i)
				linkURL = &u
			}
			active := i != 3
			var endDate *time.Time
			switch i {
			case 2:
				t := time.Now().AddDate(0, 1, 0)
				endDate = &t
			case 4:
				// already expired, should never show publicly
				t := time.Now().AddDate(0, 0, -1)
				endDate = &t
			}
			clicks := int64(r.Intn(500))
			// name-based id keeps reruns idempotent through ON CONFLICT
			id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(imageURL)).String()
			_, err := db.Exec(ctx, `INSERT INTO ads
    (id, title, image_url, link_url, position, is_active, end_date, click_count)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
				id, title, imageURL, linkURL, pos, active, endDate, clicks)
			if err != nil {
				return err
			}
		}
	}

	// demo admin and viewer profiles
	profiles := []struct {
		email   string
		isAdmin bool
	}{
		{"admin@example.com", true},
		{"viewer@example.com", false},
	}
	for _, p := range profiles {
		_, err := db.Exec(ctx, `INSERT INTO profiles (email, is_admin)
VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`, p.email, p.isAdmin)
		if err != nil {
			return err
		}
	}
	return nil
}
