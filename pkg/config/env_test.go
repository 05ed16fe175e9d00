package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amirasaad/market/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// chdir changes the working directory to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")
	assert.Equal(t, "test_value", GetEnv("TEST_VAR", "default"))
	assert.Equal(t, "default", GetEnv("NONEXISTENT_VAR", "default"))
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "re****6379", maskValue("redis://localhost:6379"))
}

func TestFindEnvTest(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.market-test"), []byte("X=1\n"), 0o600))
	chdir(t, nested)

	found, err := FindEnvTest(".env.market-test")
	require.NoError(t, err)
	content, err := os.ReadFile(found)
	require.NoError(t, err)
	assert.Equal(t, "X=1\n", string(content))

	_, err = FindEnvTest(".env.does-not-exist")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	unsetenv(t, "REDIS_URL")
	unsetenv(t, "AUTH_STRATEGY")
	unsetenv(t, "RATE_LIMIT_MAX_REQUESTS")
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_JWT_EXPIRY", "2h")
	t.Setenv("DATABASE_URL", "sqlite://file::memory:")
	t.Setenv("MARKET_STARTING_BUDGET", "250.50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "sqlite://file::memory:", cfg.DB.Url)
	assert.Equal(t, money.MustParse("250.50"), cfg.Market.StartingBudget)
	assert.Equal(t, "jwt", cfg.Auth.Strategy)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"),
		[]byte("AUTH_JWT_SECRET=from-file\nMARKET_STARTING_BUDGET=10\n"), 0o600))
	chdir(t, dir)
	unsetenv(t, "AUTH_JWT_SECRET")
	unsetenv(t, "MARKET_STARTING_BUDGET")
	unsetenv(t, "AUTH_STRATEGY")

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.Jwt.Secret)
	assert.Equal(t, money.MustParse("10"), cfg.Market.StartingBudget)
}

func TestLoad_MissingSecret(t *testing.T) {
	chdir(t, t.TempDir())
	unsetenv(t, "AUTH_JWT_SECRET")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnsupportedStrategy(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AUTH_JWT_SECRET", "s")
	t.Setenv("AUTH_STRATEGY", "basic")
	_, err := Load()
	assert.ErrorContains(t, err, "AUTH_STRATEGY")
}

func TestLoad_NegativeBudget(t *testing.T) {
	chdir(t, t.TempDir())
	unsetenv(t, "AUTH_STRATEGY")
	t.Setenv("AUTH_JWT_SECRET", "s")
	t.Setenv("MARKET_STARTING_BUDGET", "-1")
	_, err := Load()
	assert.ErrorContains(t, err, "MARKET_STARTING_BUDGET")
}

func TestLoadAdmin_NoSecretNeeded(t *testing.T) {
	chdir(t, t.TempDir())
	unsetenv(t, "AUTH_JWT_SECRET")
	unsetenv(t, "DATABASE_URL")
	unsetenv(t, "MARKET_STARTING_BUDGET")
	unsetenv(t, "LOG_FORMAT")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadAdmin()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "sqlite://market.db", cfg.DB.Url)
	assert.Equal(t, money.MustParse("1000"), cfg.Market.StartingBudget)
	assert.Equal(t, "text", cfg.Log.Format)
}
