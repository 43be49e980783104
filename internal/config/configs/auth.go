package configs

import "time"

// Auth configures the admin access guard. AdminEmails is the static
// allow-list consulted before the persisted profile flag. SessionSecret
// signs admin session tokens; it must be set in production. SessionTTL
// bounds how long an authorization decision is cached in a token before
// the caller has to go through the identity provider again.
type Auth struct {
	// AdminEmails is a comma-separated list of emails that are always
	// treated as administrators.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`
	// SessionSecret is the HMAC key used to sign admin session tokens.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev-only-session-secret"`
	// SessionTTL is the lifetime of an issued admin session token.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	// IdentityURL is the base URL of the external identity provider used
	// to resolve the current principal from a bearer credential.
	IdentityURL string `env:"IDENTITY_URL" envDefault:"http://localhost:9999"`
}
