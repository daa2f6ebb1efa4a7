package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blocklist 已注销但尚未自然过期的 jti 集合
type Blocklist interface {
	// Revoke 登记 jti，ttl 取令牌剩余寿命，到期自动清理；重复登记为幂等成功
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisBlocklist struct {
	rdb *redis.Client
}

func NewRedisBlocklist(rdb *redis.Client) *RedisBlocklist {
	return &RedisBlocklist{rdb: rdb}
}

func (b *RedisBlocklist) key(jti string) string { return "jti:" + jti }

func (b *RedisBlocklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// 令牌已自然过期，无需登记
		return nil
	}
	return b.rdb.Set(ctx, b.key(jti), "revoked", ttl).Err()
}

func (b *RedisBlocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
