package domain

import "time"

// Principal is the authenticated actor making a request, as resolved from
// the external identity provider or from a verified session token.
type Principal struct {
	ID    string
	Email string
}

// Profile is the persisted record backing the database half of the admin
// access guard. It is looked up by email when the static allow-list does
// not already grant access.
type Profile struct {
	ID        string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}
