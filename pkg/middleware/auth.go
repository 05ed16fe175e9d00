// Package middleware holds the Fiber middleware shared by the HTTP routes.
package middleware

import (
	"errors"

	"github.com/amirasaad/market/pkg/config"
	authsvc "github.com/amirasaad/market/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// JwtProtected verifies the bearer token and stores it in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.Secret),
		},
		ErrorHandler: jwtError,
	})
}

// RequireIdentity resolves the verified token into an authsvc.Identity and
// rejects revoked tokens. It must run after JwtProtected.
func RequireIdentity(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return unauthorized(c, "missing user context")
		}
		id, err := authSvc.Identify(c.Context(), token)
		if err != nil {
			return unauthorized(c, "Please log in to continue.")
		}
		c.Locals(identityKey, id)
		return c.Next()
	}
}

// Protected chains JwtProtected and RequireIdentity.
func Protected(cfg *config.Jwt, authSvc *authsvc.Service) []fiber.Handler {
	return []fiber.Handler{JwtProtected(cfg), RequireIdentity(authSvc)}
}

// CurrentIdentity returns the identity stored by RequireIdentity.
func CurrentIdentity(c *fiber.Ctx) (*authsvc.Identity, bool) {
	id, ok := c.Locals(identityKey).(*authsvc.Identity)
	return id, ok && id != nil
}

// jwtError answers 401 when no credentials were sent and 400 when the
// Authorization header is not a bearer token.
func jwtError(c *fiber.Ctx, err error) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		return unauthorized(c, "Please log in to continue.")
	}
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		c.Set(fiber.HeaderContentType, "application/problem+json")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"type":   "about:blank",
			"title":  "Missing or malformed JWT",
			"status": fiber.StatusBadRequest,
		})
	}
	return unauthorized(c, "Invalid or expired JWT")
}

func unauthorized(c *fiber.Ctx, detail string) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  "Unauthorized",
		"status": fiber.StatusUnauthorized,
		"detail": detail,
	})
}
