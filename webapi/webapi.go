// Package webapi provides the HTTP API of the market. It is organized into
// sub-packages per area:
// - auth: registration, login and logout
// - user: the caller's profile
// - market: item listing, purchase and sell
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/market/docs" // swagger spec
	"github.com/amirasaad/market/pkg/app"
	authweb "github.com/amirasaad/market/webapi/auth"
	"github.com/amirasaad/market/webapi/common"
	marketweb "github.com/amirasaad/market/webapi/market"
	userweb "github.com/amirasaad/market/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, nil, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	// Keyed on the first X-Forwarded-For hop when behind a proxy,
	// then X-Real-IP, then the peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	if app.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Market API is running! 🛒")
		},
	)

	authweb.Routes(fiberApp, app.AuthService, app.UserService, app.Config)
	userweb.Routes(fiberApp, app.UserService, app.AuthService, app.Config)
	marketweb.Routes(fiberApp, app.MarketService, app.AuthService, app.Config)
	return fiberApp
}
