package redisdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cnic-auth/backend/internal/domain/repository"
)

func blacklistKey(jti string) string {
	return "token:blacklist:" + jti
}

// TokenBlacklist stores revoked refresh-token jtis in Redis. Each entry
// carries a TTL matching the token's remaining lifetime, so the set never
// outgrows the number of live tokens.
type TokenBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{rdb: rdb}
}

func (b *TokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to revoke.
		return nil
	}
	return b.rdb.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

func (b *TokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ repository.TokenBlacklist = (*TokenBlacklist)(nil)
