package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/market/infra"
	"github.com/amirasaad/market/infra/cache"
	"github.com/amirasaad/market/internal/fixtures/mocks"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/domain/user"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	repouser "github.com/amirasaad/market/pkg/repository/user"
	authsvc "github.com/amirasaad/market/pkg/service/auth"
	"github.com/amirasaad/market/pkg/testutils"
	"github.com/amirasaad/market/pkg/utils"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJwt = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()
	strategy := mocks.NewMockAuthStrategy(t)
	s := authsvc.New(nil, strategy, nil, slog.Default())

	got, err := s.Login(context.Background(), validation.Login{Username: "bob"})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has("password"))
}

func TestLogin_StrategyError(t *testing.T) {
	t.Parallel()
	strategy := mocks.NewMockAuthStrategy(t)
	strategy.EXPECT().Login(mock.Anything, "bob", "wrong").Return(nil, domain.ErrInvalidCredentials).Once()
	s := authsvc.New(nil, strategy, nil, slog.Default())

	got, err := s.Login(context.Background(), validation.Login{Username: "bob", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, got)
}

func TestJWTStrategy_Login(t *testing.T) {
	t.Parallel()
	hash, err := utils.HashPassword("password")
	require.NoError(t, err)
	bob := &dto.UserRead{ID: uuid.New(), Username: "bob", HashedPassword: hash}

	tests := []struct {
		name     string
		username string
		password string
		repoUser *dto.UserRead
		repoErr  error
		wantErr  error
	}{
		{name: "success", username: "bob", password: "password", repoUser: bob},
		{name: "wrong password", username: "bob", password: "nope", repoUser: bob, wantErr: domain.ErrInvalidCredentials},
		{name: "unknown user", username: "alice", password: "password", repoErr: user.ErrUserNotFound, wantErr: domain.ErrInvalidCredentials},
		{name: "repository failure", username: "bob", password: "password", repoErr: errors.New("db down"), wantErr: errors.New("db down")},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			users := mocks.NewMockUserRepository(t)
			uow := mocks.NewMockUnitOfWork(t).PassThrough()
			uow.EXPECT().GetRepository((*repouser.Repository)(nil)).Return(users, nil).Once()
			users.EXPECT().GetByUsername(mock.Anything, tc.username).Return(tc.repoUser, tc.repoErr).Once()

			strategy := authsvc.NewJWTStrategy(uow, testJwt, slog.Default())
			got, err := strategy.Login(context.Background(), tc.username, tc.password)
			if tc.wantErr != nil {
				assert.Nil(t, got)
				if errors.Is(tc.wantErr, domain.ErrInvalidCredentials) {
					assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bob.ID, got.ID)
		})
	}
}

func TestJWTStrategy_TokenRoundTrip(t *testing.T) {
	t.Parallel()
	strategy := authsvc.NewJWTStrategy(nil, testJwt, slog.Default())
	u := &dto.UserRead{ID: uuid.New(), Username: "bob"}

	signed, err := strategy.GenerateToken(context.Background(), u)
	require.NoError(t, err)

	token, err := strategy.Parse(signed)
	require.NoError(t, err)
	id, err := strategy.Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, "bob", id.Username)
	assert.NotEmpty(t, id.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), id.ExpiresAt, time.Minute)

	again, err := strategy.GenerateToken(context.Background(), u)
	require.NoError(t, err)
	assert.NotEqual(t, signed, again, "every token carries its own id")
}

func TestJWTStrategy_Parse_Rejects(t *testing.T) {
	t.Parallel()
	strategy := authsvc.NewJWTStrategy(nil, testJwt, slog.Default())
	other := authsvc.NewJWTStrategy(nil, &config.Jwt{Secret: "other", Expiry: time.Hour}, slog.Default())
	expired := authsvc.NewJWTStrategy(nil, &config.Jwt{Secret: testJwt.Secret, Expiry: -time.Minute}, slog.Default())
	u := &dto.UserRead{ID: uuid.New(), Username: "bob"}

	forged, err := other.GenerateToken(context.Background(), u)
	require.NoError(t, err)
	_, err = strategy.Parse(forged)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stale, err := expired.GenerateToken(context.Background(), u)
	require.NoError(t, err)
	_, err = strategy.Parse(stale)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = strategy.Parse("not-a-token")
	assert.Error(t, err)
}

func TestJWTStrategy_Identify_BadClaims(t *testing.T) {
	t.Parallel()
	strategy := authsvc.NewJWTStrategy(nil, testJwt, slog.Default())
	exp := time.Now().Add(time.Hour).Unix()

	cases := map[string]*jwt.Token{
		"nil token":     nil,
		"not validated": jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uuid.NewString(), "jti": "x", "exp": exp}),
		"bad user id":   {Valid: true, Claims: jwt.MapClaims{"user_id": "nope", "jti": "x", "exp": exp}},
		"missing jti":   {Valid: true, Claims: jwt.MapClaims{"user_id": uuid.NewString(), "exp": exp}},
		"missing exp":   {Valid: true, Claims: jwt.MapClaims{"user_id": uuid.NewString(), "jti": "x"}},
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := strategy.Identify(context.Background(), token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestIdentify_RevokedToken(t *testing.T) {
	t.Parallel()
	id := &authsvc.Identity{UserID: uuid.New(), TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}
	token := &jwt.Token{Valid: true}

	strategy := mocks.NewMockAuthStrategy(t)
	strategy.EXPECT().Identify(mock.Anything, token).Return(id, nil).Twice()
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().IsRevoked(mock.Anything, "jti-1").Return(false, nil).Once()
	tokens.EXPECT().IsRevoked(mock.Anything, "jti-1").Return(true, nil).Once()

	s := authsvc.New(nil, strategy, tokens, slog.Default())
	got, err := s.Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = s.Identify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

func TestIdentify_StoreError(t *testing.T) {
	t.Parallel()
	id := &authsvc.Identity{UserID: uuid.New(), TokenID: "jti-1"}
	strategy := mocks.NewMockAuthStrategy(t)
	strategy.EXPECT().Identify(mock.Anything, mock.Anything).Return(id, nil).Once()
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().IsRevoked(mock.Anything, "jti-1").Return(false, errors.New("redis down")).Once()

	s := authsvc.New(nil, strategy, tokens, slog.Default())
	_, err := s.Identify(context.Background(), &jwt.Token{})
	assert.EqualError(t, err, "redis down")
}

func TestLogout(t *testing.T) {
	t.Parallel()
	tokens := mocks.NewMockTokenStore(t)
	tokens.EXPECT().Revoke(mock.Anything, "jti-1", mock.AnythingOfType("time.Duration")).
		Run(func(_ context.Context, _ string, ttl time.Duration) {
			assert.Greater(t, ttl, 59*time.Minute)
		}).Return(nil).Once()

	s := authsvc.New(nil, mocks.NewMockAuthStrategy(t), tokens, slog.Default())
	err := s.Logout(context.Background(), &authsvc.Identity{
		UserID:    uuid.New(),
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Logout(context.Background(), nil), domain.ErrUnauthorized)
}

// Full round trip against SQLite and the in-memory revocation list.
func TestService_LoginIdentifyLogout(t *testing.T) {
	db := testutils.NewTestDB(t)
	uow := infra.NewUoW(db)
	bob := testutils.NewTestUser(t, uow, "bob", money.MustParse("1000"))

	tokens := cache.NewMemoryTokenStore(time.Minute)
	t.Cleanup(func() { _ = tokens.Close() })
	s := authsvc.NewWithJWT(uow, testJwt, tokens, slog.Default())
	strategy := authsvc.NewJWTStrategy(uow, testJwt, slog.Default())

	_, err := s.Login(context.Background(), validation.Login{Username: "bob", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = s.Login(context.Background(), validation.Login{Username: "nobody", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	u, err := s.Login(context.Background(), validation.Login{Username: "bob", Password: testutils.TestPassword})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, u.ID)

	signed, err := s.GenerateToken(context.Background(), u)
	require.NoError(t, err)
	token, err := strategy.Parse(signed)
	require.NoError(t, err)

	id, err := s.Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, id.UserID)

	require.NoError(t, s.Logout(context.Background(), id))
	_, err = s.Identify(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
