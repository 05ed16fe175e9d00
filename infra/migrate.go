package infra

import (
	"embed"
	"errors"
	"fmt"

	itemrepo "github.com/amirasaad/market/infra/repository/item"
	userrepo "github.com/amirasaad/market/infra/repository/user"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate creates or upgrades the schema. Postgres runs the versioned SQL
// migrations; other dialects use gorm's AutoMigrate on the models.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		return migratePostgres(db)
	}
	if err := db.AutoMigrate(&userrepo.User{}, &itemrepo.Item{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func migratePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	defer src.Close() //nolint:errcheck

	// m.Close is not called: it would close the shared *sql.DB.
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
