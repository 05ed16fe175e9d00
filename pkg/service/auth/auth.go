package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/market/pkg/cache"
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/domain/user"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/repository"
	repouser "github.com/amirasaad/market/pkg/repository/user"
	"github.com/amirasaad/market/pkg/utils"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller of a request, resolved from its token.
type Identity struct {
	UserID    uuid.UUID
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

type Strategy interface {
	Login(ctx context.Context, username, password string) (*dto.UserRead, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
	Identify(ctx context.Context, token *jwt.Token) (*Identity, error)
}

type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	tokens   cache.TokenStore
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	tokens cache.TokenStore,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, tokens: tokens, logger: logger}
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	tokens cache.TokenStore,
	logger *slog.Logger,
) *Service {
	return New(uow, NewJWTStrategy(uow, cfg, logger), tokens, logger)
}

// Login checks the credentials. Any failure other than missing fields is
// reported as domain.ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	in validation.Login,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "username", in.Username)
	log.Debug("Login called")
	if errs := validation.ValidateLogin(in); len(errs) > 0 {
		return nil, errs
	}
	u, err = s.strategy.Login(ctx, in.Username, in.Password)
	if err != nil {
		log.Warn("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// Identify resolves the caller of a verified token and rejects revoked ones.
func (s *Service) Identify(
	ctx context.Context,
	token *jwt.Token,
) (*Identity, error) {
	id, err := s.strategy.Identify(ctx, token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.tokens.IsRevoked(ctx, id.TokenID)
	if err != nil {
		s.logger.Error("Revocation check failed", "userID", id.UserID, "error", err)
		return nil, err
	}
	if revoked {
		s.logger.Debug("Revoked token used", "userID", id.UserID)
		return nil, user.ErrUserUnauthorized
	}
	return id, nil
}

// Logout revokes the caller's token until it would have expired.
func (s *Service) Logout(
	ctx context.Context,
	id *Identity,
) error {
	if id == nil {
		return user.ErrUserUnauthorized
	}
	if err := s.tokens.Revoke(ctx, id.TokenID, time.Until(id.ExpiresAt)); err != nil {
		s.logger.Error("Logout failed", "userID", id.UserID, "error", err)
		return err
	}
	s.logger.Info("Logout successful", "userID", id.UserID)
	return nil
}

// JWTStrategy implements Strategy with HS256 signed tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) GenerateToken(
	_ context.Context,
	u *dto.UserRead,
) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(s.cfg.Expiry).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
}

// Parse verifies a signed token string. The HTTP layer relies on the JWT
// middleware for this; Parse serves the other callers.
func (s *JWTStrategy) Parse(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrUserUnauthorized, err)
	}
	return token, nil
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "username", username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[repouser.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.GetByUsername(ctx, username)
		if errors.Is(err, domain.ErrNotFound) {
			// Same bcrypt cost whether or not the user exists.
			utils.BurnPasswordCheck(password)
			log.Debug("Unknown username")
			return domain.ErrInvalidCredentials
		}
		if err != nil {
			return err
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			log.Debug("Password mismatch")
			return domain.ErrInvalidCredentials
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}

func (s *JWTStrategy) Identify(
	_ context.Context,
	token *jwt.Token,
) (*Identity, error) {
	if token == nil || !token.Valid {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, user.ErrUserUnauthorized
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, user.ErrUserUnauthorized
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, user.ErrUserUnauthorized
	}
	username, _ := claims["username"].(string)
	return &Identity{
		UserID:    userID,
		Username:  username,
		TokenID:   jti,
		ExpiresAt: exp.Time,
	}, nil
}
