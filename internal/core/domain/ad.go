package domain

import "time"

// Position is the fixed page slot a banner is eligible to occupy. Only the
// four enumerated values are valid; the wire representation is the exact
// lower-case string.
type Position string

const (
	PositionTop     Position = "top"
	PositionMiddle  Position = "middle"
	PositionBottom  Position = "bottom"
	PositionSidebar Position = "sidebar"
)

// Valid reports whether p is one of the enumerated positions.
func (p Position) Valid() bool {
	switch p {
	case PositionTop, PositionMiddle, PositionBottom, PositionSidebar:
		return true
	}
	return false
}

// Ad represents a promotional banner record. LinkURL and EndDate are
// optional; a nil EndDate means the ad never expires. ClickCount only
// increases and is maintained by the store.
type Ad struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	ImageURL   string     `json:"image_url"`
	LinkURL    *string    `json:"link_url,omitempty"`
	Position   Position   `json:"position"`
	IsActive   bool       `json:"is_active"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	ClickCount int64      `json:"click_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// EligibleAt reports whether the ad may be shown publicly at the given
// instant: it must be active and not past its expiry date.
func (a *Ad) EligibleAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.EndDate != nil && a.EndDate.Before(now) {
		return false
	}
	return true
}
