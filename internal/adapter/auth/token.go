package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"streamview-ads/internal/core/domain"
	"streamview-ads/internal/core/port"
)

// Claims is the payload of an admin session token. The token caches a
// positive guard decision for a bounded time so admin requests do not hit
// the identity provider or the profile store again until it expires.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies short-lived admin session tokens with
// HMAC-SHA256.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration

	// now is an injection point for tests; it defaults to the wall clock.
	now func() time.Time
}

// NewTokenIssuer creates an issuer with the given signing secret and token
// lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a session token for the principal. The expiry is embedded in
// the token and enforced by Verify.
func (i *TokenIssuer) Issue(p domain.Principal) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify validates the signature and expiry of a session token and returns
// the principal it was issued to. Any failure maps to port.ErrUnauthorized;
// the reason is never exposed to the caller.
func (i *TokenIssuer) Verify(tokenStr string) (*domain.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		// Enforce HMAC signing so alg:none and asymmetric tokens are rejected.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil || !token.Valid || claims.Email == "" {
		return nil, port.ErrUnauthorized
	}
	return &domain.Principal{ID: claims.Subject, Email: claims.Email}, nil
}
