package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/market/pkg/cache"
	"github.com/redis/go-redis/v9"
)

// RedisTokenStore implements cache.TokenStore on Redis keys that expire
// together with the token.
type RedisTokenStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisTokenStoreWithOptions creates a RedisTokenStore from redis.Options.
func NewRedisTokenStoreWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisTokenStore {
	return &RedisTokenStore{client: redis.NewClient(opt), prefix: prefix, logger: logger}
}

// NewRedisTokenStoreFromURL parses a redis:// URL and creates the store.
func NewRedisTokenStoreFromURL(
	url, prefix string,
	logger *slog.Logger,
) (*RedisTokenStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisTokenStoreWithOptions(opt, prefix, logger), nil
}

func (r *RedisTokenStore) key(tokenID string) string {
	return r.prefix + tokenID
}

func (r *RedisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(tokenID), 1, ttl).Err(); err != nil {
		r.logger.Error("Redis revoke error", "token_id", tokenID, "error", err)
		return err
	}
	r.logger.Debug("Token revoked", "token_id", tokenID, "ttl", ttl)
	return nil
}

func (r *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		r.logger.Error("Redis exists error", "token_id", tokenID, "error", err)
		return false, err
	}
	return n > 0, nil
}

// Ping checks the connection.
func (r *RedisTokenStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisTokenStore) Close() error {
	return r.client.Close()
}

var _ cache.TokenStore = (*RedisTokenStore)(nil)
