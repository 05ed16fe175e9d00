package auth_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/market/internal/fixtures/mocks"
	"github.com/amirasaad/market/pkg/dto"
	repouser "github.com/amirasaad/market/pkg/repository/user"
	authsvc "github.com/amirasaad/market/pkg/service/auth"
	"github.com/amirasaad/market/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func BenchmarkJWTStrategy_Login(b *testing.B) {
	hash, _ := utils.HashPassword("password")
	u := &dto.UserRead{ID: uuid.New(), Username: "user", HashedPassword: hash}
	repo := mocks.NewMockUserRepository(b)
	repo.EXPECT().GetByUsername(mock.Anything, "user").Return(u, nil)
	uow := mocks.NewMockUnitOfWork(b).PassThrough()
	uow.EXPECT().GetRepository((*repouser.Repository)(nil)).Return(repo, nil)
	strategy := authsvc.NewJWTStrategy(uow, testJwt, slog.Default())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = strategy.Login(context.Background(), "user", "password")
	}
}

func BenchmarkJWTStrategy_GenerateToken(b *testing.B) {
	u := &dto.UserRead{ID: uuid.New(), Username: "user"}
	strategy := authsvc.NewJWTStrategy(nil, testJwt, slog.Default())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = strategy.GenerateToken(context.Background(), u)
	}
}
