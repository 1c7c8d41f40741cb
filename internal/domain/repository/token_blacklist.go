package repository

import (
	"context"
	"time"
)

// TokenBlacklist is the revocation set for refresh tokens, keyed by the
// token's jti claim. Entries only need to outlive the token itself, so
// implementations may expire them after ttl.
type TokenBlacklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}
