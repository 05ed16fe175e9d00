// Command cli is the interactive admin console for the market database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/market/infra"
	"github.com/amirasaad/market/infra/initializer"
	"github.com/amirasaad/market/internal/console"
	"github.com/amirasaad/market/internal/fixtures/items"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/service/catalog"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadAdmin(".env")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// Logs go to stderr so they do not interleave with the menu.
	logger := initializer.NewLogger(os.Stderr, cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close() //nolint: errcheck
	}

	svc := catalog.New(infra.NewUoW(db), logger)
	migrate := func() error { return infra.Migrate(db) }
	if err := migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	useColor := term.IsTerminal(int(os.Stdout.Fd()))
	return console.New(os.Stdin, os.Stdout, svc, migrate, items.Sample(), useColor).
		Run(context.Background())
}
