package ports

import "time"

// ActorKind distinguishes the three authenticated principals.
type ActorKind string

const (
	ActorUser  ActorKind = "user"
	ActorAgent ActorKind = "agent"
	ActorAdmin ActorKind = "admin"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenIssuer mints and parses bearer tokens for authenticated sessions.
type TokenIssuer interface {
	// Issue mints a token for the given subject valid for ttl.
	Issue(subject string, kind ActorKind, ttl time.Duration) (string, error)

	// Parse validates a token and returns its subject and actor kind.
	// Returns errs.ErrUnauthorized for malformed, forged, or expired tokens.
	Parse(token string) (subject string, kind ActorKind, err error)
}
