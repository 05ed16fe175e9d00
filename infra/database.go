package infra

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/market/pkg/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm driver from the scheme of a database URL.
func Dialector(databaseUrl string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseUrl, "postgres://"), strings.HasPrefix(databaseUrl, "postgresql://"):
		return postgres.Open(databaseUrl), nil
	case strings.HasPrefix(databaseUrl, "mysql://"):
		return mysql.Open(mysqlDSN(strings.TrimPrefix(databaseUrl, "mysql://"))), nil
	case strings.HasPrefix(databaseUrl, "sqlite://"):
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(databaseUrl, "sqlite://"))), nil
	}
	return nil, fmt.Errorf("unsupported database url scheme: %q", databaseUrl)
}

// mysqlDSN makes sure DATETIME columns scan into time.Time.
func mysqlDSN(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	return appendQuery(dsn, "parseTime=true")
}

// sqliteDSN turns on foreign keys, which SQLite leaves off per connection.
func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "market.db"
	}
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	return appendQuery(dsn, "_pragma=foreign_keys(1)")
}

func appendQuery(dsn, kv string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + kv
	}
	return dsn + "?" + kv
}

// NewDBConnection opens the database named by cfg.Url. In development the
// gorm logger prints every statement.
func NewDBConnection(
	cfg *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cfg == nil || cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	dialector, err := Dialector(cfg.Url)
	if err != nil {
		return nil, err
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if connection.Dialector.Name() == "sqlite" {
		// One connection: SQLite serialises writers anyway, and an
		// in-memory database lives only as long as its connection.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return connection, nil
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return connection, nil
}
