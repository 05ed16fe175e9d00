// Package initializer builds the process-wide dependencies from configuration.
package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/amirasaad/market/infra"
	infracache "github.com/amirasaad/market/infra/cache"
	"github.com/amirasaad/market/pkg/app"
	"github.com/amirasaad/market/pkg/cache"
	"github.com/amirasaad/market/pkg/config"
)

// InitializeDependencies opens the database, applies the schema and picks the
// token revocation backend. The returned closer releases all of them.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	closer io.Closer,
	err error,
) {
	logger := SetupLogger(cfg.Log)
	return initialize(cfg, logger)
}

func initialize(cfg *config.App, logger *slog.Logger) (*app.Deps, io.Closer, error) {
	var closers closeAll

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, sqlDB)

	if err := infra.Migrate(db); err != nil {
		_ = closers.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	tokens, tokenCloser, err := newTokenStore(cfg.Redis, logger)
	if err != nil {
		_ = closers.Close()
		return nil, nil, err
	}
	closers = append(closers, tokenCloser)

	return &app.Deps{
		Uow:    infra.NewUoW(db),
		Tokens: tokens,
		Logger: logger,
	}, closers, nil
}

// newTokenStore uses Redis when a URL is configured and memory otherwise.
func newTokenStore(cfg *config.Redis, logger *slog.Logger) (cache.TokenStore, io.Closer, error) {
	if cfg == nil || cfg.URL == "" {
		logger.Info("Using in-memory token revocation list")
		store := infracache.NewMemoryTokenStore(time.Minute)
		return store, store, nil
	}
	store, err := infracache.NewRedisTokenStoreFromURL(cfg.URL, cfg.KeyPrefix, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Redis token store: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to reach Redis: %w", err)
	}
	logger.Info("Using Redis token revocation list")
	return store, store, nil
}

type closeAll []io.Closer

// Close closes in reverse order and returns the first error.
func (c closeAll) Close() error {
	var first error
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
