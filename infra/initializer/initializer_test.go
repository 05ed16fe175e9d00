package initializer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	infracache "github.com/amirasaad/market/infra/cache"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_SQLiteAndMemory(t *testing.T) {
	cfg := testutils.NewTestConfig()
	deps, closer, err := initialize(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	assert.NotNil(t, deps.Uow)
	assert.IsType(t, &infracache.MemoryTokenStore{}, deps.Tokens)
	revoked, err := deps.Tokens.IsRevoked(context.Background(), "x")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestNewTokenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	store, closer, err := newTokenStore(&config.Redis{URL: "redis://" + mr.Addr(), KeyPrefix: "t:"}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })
	assert.IsType(t, &infracache.RedisTokenStore{}, store)
}

func TestNewTokenStore_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, _, err := newTokenStore(&config.Redis{URL: "redis://" + addr}, slog.Default())
	assert.Error(t, err)

	_, _, err = newTokenStore(&config.Redis{URL: "::not a url"}, slog.Default())
	assert.Error(t, err)
}

func TestInitialize_BadDatabaseURL(t *testing.T) {
	cfg := testutils.NewTestConfig()
	cfg.DB.Url = "oracle://nope"
	_, _, err := initialize(cfg, slog.Default())
	assert.Error(t, err)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, &config.Log{Format: "json", Prefix: "[test]"})
	logger.Info("hello", "userID", "42")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"userID":"42"`)
}
