package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "portfolio:revoked:"

// RedisRepository keeps the denylist of revoked bearer tokens, keyed by jti.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

// Revoke denylists jti until the token would have expired anyway.
func (r *RedisRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedTokenPrefix+jti, "1", ttl).Err()
}

func (r *RedisRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	exists, err := r.rdb.Exists(ctx, revokedTokenPrefix+jti).Result()
	return exists == 1, err
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
