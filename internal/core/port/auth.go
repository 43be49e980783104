package port

import (
	"context"
	"errors"

	"streamview-ads/internal/core/domain"
)

// ErrUnauthorized marks a caller that lacks admin rights or whose identity
// could not be resolved. It surfaces as HTTP 401 with a generic message
// that never explains why.
var ErrUnauthorized = errors.New("unauthorized")

// AuthoritySource answers whether a principal holds admin authority. The
// guard queries several sources in a defined precedence order; the first
// affirmative answer wins.
type AuthoritySource interface {
	IsAdmin(ctx context.Context, p domain.Principal) (bool, error)
}

// Authorizer is the access guard for mutating ad operations. A failed
// identity resolution is a denial, never an error surfaced to the client.
type Authorizer interface {
	// Authorize reports whether the principal may manage ads. An error is
	// returned only for source failures (e.g. the profile store being
	// unreachable); a plain denial is (false, nil).
	Authorize(ctx context.Context, p domain.Principal) (bool, error)
}

// IdentityProvider resolves a bearer credential issued by the external
// identity collaborator into a principal. Unknown or expired credentials
// yield ErrUnauthorized.
type IdentityProvider interface {
	Resolve(ctx context.Context, credential string) (*domain.Principal, error)
}
