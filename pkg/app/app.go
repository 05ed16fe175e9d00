// Package app assembles the services from their dependencies.
package app

import (
	"log/slog"

	"github.com/amirasaad/market/pkg/cache"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/repository"
	"github.com/amirasaad/market/pkg/service/auth"
	"github.com/amirasaad/market/pkg/service/catalog"
	"github.com/amirasaad/market/pkg/service/market"
	"github.com/amirasaad/market/pkg/service/user"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow    repository.UnitOfWork
	Tokens cache.TokenStore
	Logger *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	MarketService  *market.Service
	CatalogService *catalog.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	authMap := map[string]func() *auth.Service{
		"jwt": func() *auth.Service {
			return auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Tokens, deps.Logger)
		},
	}
	if authFactory, ok := authMap[cfg.Auth.Strategy]; ok {
		app.AuthService = authFactory()
	} else {
		deps.Logger.Warn("Unknown auth strategy, falling back to jwt", "strategy", cfg.Auth.Strategy)
		app.AuthService = authMap["jwt"]()
	}
	app.UserService = user.New(deps.Uow, cfg.Market.StartingBudget, deps.Logger)
	app.MarketService = market.New(deps.Uow, deps.Logger)
	app.CatalogService = catalog.New(deps.Uow, deps.Logger)
	return app
}
