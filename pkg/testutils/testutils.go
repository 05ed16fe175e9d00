// Package testutils provides database and fixture helpers shared by tests.
package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/market/infra"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/repository"
	"github.com/amirasaad/market/pkg/repository/item"
	"github.com/amirasaad/market/pkg/repository/user"
	"github.com/amirasaad/market/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every user made by NewTestUser.
const TestPassword = "password123"

// NewTestDB opens a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infra.NewDBConnection(&config.DB{Url: "sqlite://file::memory:"}, "test")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTestConfig returns a configuration suitable for tests.
func NewTestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text", Prefix: "[market-test]"},
		DB:     &config.DB{Url: "sqlite://file::memory:"},
		Auth: &config.Auth{
			Strategy: "jwt",
			Jwt:      &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		},
		Redis:     &config.Redis{KeyPrefix: "market:test:revoked:"},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Market:    &config.Market{StartingBudget: money.MustParse("1000")},
	}
}

// NewTestUser stores a user with TestPassword and the given budget.
func NewTestUser(
	t testing.TB,
	uow repository.UnitOfWork,
	username string,
	budget money.Amount,
) *dto.UserRead {
	t.Helper()
	hash, err := utils.HashPassword(TestPassword)
	require.NoError(t, err)

	var created *dto.UserRead
	err = uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[user.Repository](uow)
		if err != nil {
			return err
		}
		id := uuid.New()
		if err := repo.Create(context.Background(), &dto.UserCreate{
			ID:       id,
			Username: username,
			Email:    username + "@example.com",
			Password: hash,
			Budget:   budget,
		}); err != nil {
			return err
		}
		created, err = repo.Get(context.Background(), id)
		return err
	})
	require.NoError(t, err)
	return created
}

// NewTestItem stores an unowned item.
func NewTestItem(
	t testing.TB,
	uow repository.UnitOfWork,
	name, barcode string,
	price money.Amount,
) *dto.ItemRead {
	t.Helper()
	var created *dto.ItemRead
	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[item.Repository](uow)
		if err != nil {
			return err
		}
		id := uuid.New()
		if err := repo.Create(context.Background(), &dto.ItemCreate{
			ID:          id,
			Name:        name,
			Barcode:     barcode,
			Description: name + " for tests",
			Price:       price,
		}); err != nil {
			return err
		}
		created, err = repo.Get(context.Background(), id)
		return err
	})
	require.NoError(t, err)
	return created
}
