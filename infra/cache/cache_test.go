package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore(time.Hour)
	defer s.Close() //nolint:errcheck

	revoked, err := s.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, s.Revoke(ctx, "a", time.Minute))
	revoked, err = s.IsRevoked(ctx, "a")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, s.Revoke(ctx, "already-expired", 0))
	revoked, _ = s.IsRevoked(ctx, "already-expired")
	assert.False(t, revoked)
}

func TestMemoryTokenStore_Cleanup(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore(5 * time.Millisecond)
	defer s.Close() //nolint:errcheck

	require.NoError(t, s.Revoke(ctx, "short", time.Millisecond))
	require.NoError(t, s.Revoke(ctx, "long", time.Hour))

	assert.Eventually(t, func() bool { return s.size() == 1 }, time.Second, 5*time.Millisecond)
	revoked, _ := s.IsRevoked(ctx, "long")
	assert.True(t, revoked)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewRedisTokenStoreWithOptions(&redis.Options{Addr: mr.Addr()}, "test:revoked:", logger)
	defer s.Close() //nolint:errcheck

	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Revoke(ctx, "jti-1", time.Minute))
	assert.True(t, mr.Exists("test:revoked:jti-1"))

	revoked, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewRedisTokenStoreFromURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewRedisTokenStoreFromURL("not a url", "p:", logger)
	assert.Error(t, err)

	s, err := NewRedisTokenStoreFromURL("redis://localhost:6379/0", "p:", logger)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
