package auth

import (
	"context"
	"errors"
	"strings"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

// StaticAllowList grants admin authority to a fixed set of emails from
// configuration. Comparison is case-insensitive.
type StaticAllowList struct {
	emails map[string]struct{}
}

// NewStaticAllowList builds an allow-list source from the configured emails.
func NewStaticAllowList(emails []string) *StaticAllowList {
	m := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			m[e] = struct{}{}
		}
	}
	return &StaticAllowList{emails: m}
}

// IsAdmin reports whether the principal's email is on the allow-list.
func (s *StaticAllowList) IsAdmin(_ context.Context, p domain.Principal) (bool, error) {
	_, ok := s.emails[strings.ToLower(p.Email)]
	return ok, nil
}

// ProfileFlagSource grants admin authority based on the is_admin flag of
// the principal's persisted profile. A missing profile is a plain denial,
// not an error.
type ProfileFlagSource struct {
	profiles port.ProfileRepository
}

// NewProfileFlagSource builds a source over the profile repository.
func NewProfileFlagSource(profiles port.ProfileRepository) *ProfileFlagSource {
	return &ProfileFlagSource{profiles: profiles}
}

// IsAdmin looks up the principal's profile and returns its is_admin flag.
func (s *ProfileFlagSource) IsAdmin(ctx context.Context, p domain.Principal) (bool, error) {
	profile, err := s.profiles.GetByEmail(ctx, p.Email)
	if errors.Is(err, port.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.IsAdmin, nil
}

// Guard is the access guard for ad management. It queries its authority
// sources in order and grants on the first affirmative answer, so the
// static allow-list short-circuits the profile lookup.
type Guard struct {
	sources []port.AuthoritySource
}

// NewGuard builds a guard over the given sources, queried in order.
func NewGuard(sources ...port.AuthoritySource) *Guard {
	return &Guard{sources: sources}
}

// Authorize implements port.Authorizer.
func (g *Guard) Authorize(ctx context.Context, p domain.Principal) (bool, error) {
	if p.Email == "" {
		return false, nil
	}
	for _, src := range g.sources {
		ok, err := src.IsAdmin(ctx, p)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
