package usecase

import (
	"time"

	"streamview-ads/internal/core/domain"
)

// RotationInterval is how long each ad in a rotating slot stays on screen
// before the next one in list order is shown.
const RotationInterval = 5 * time.Second

// rotate picks the ad for the current rotation window. The eligible list
// is cycled circularly: the index advances once per interval and wraps,
// so every ad in the set gets equal display time. Rotation derives the
// index from the clock instead of per-instance timer state, which keeps
// the serving path stateless and mutates nothing in the store. The caller
// guarantees ads is non-empty.
func rotate(ads []domain.Ad, now time.Time) *domain.Ad {
	window := now.Unix() / int64(RotationInterval/time.Second)
	return &ads[int(window%int64(len(ads)))]
}
