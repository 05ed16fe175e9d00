// Package auth serves registration, login and logout.
package auth

import (
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/middleware"
	authsvc "github.com/amirasaad/market/pkg/service/auth"
	usersvc "github.com/amirasaad/market/pkg/service/user"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/amirasaad/market/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	app *fiber.App,
	authSvc *authsvc.Service,
	userSvc *usersvc.Service,
	cfg *config.App,
) {
	app.Post("/auth/register", Register(userSvc, authSvc))
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/logout", append(middleware.Protected(cfg.Auth.Jwt, authSvc), Logout(authSvc))...)
}

// Register creates an account and logs it in.
// @Summary Register
// @Description Create an account with the starting budget and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Account data"
// @Success 201 {object} common.Response{data=Session}
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindBody[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		user, err := userSvc.Register(c.Context(), validation.Registration{
			Username:        input.Username,
			Email:           input.Email,
			Password:        input.Password,
			ConfirmPassword: input.ConfirmPassword,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		token, err := authSvc.GenerateToken(c.Context(), user)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(
			c,
			fiber.StatusCreated,
			"Account created successfully! You are now logged in as "+user.Username,
			Session{User: user, Token: token},
		)
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response{data=Session}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindBody[LoginInput](c)
		if input == nil {
			return err
		}
		user, err := authSvc.Login(c.Context(), validation.Login{
			Username: input.Username,
			Password: input.Password,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid username or password", err)
		}
		token, err := authSvc.GenerateToken(c.Context(), user)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(
			c,
			fiber.StatusOK,
			"Success! You are logged in as: "+user.Username,
			Session{User: user, Token: token},
		)
	}
}

// Logout revokes the caller's token.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /auth/logout [post]
// @Security BearerAuth
func Logout(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _ := middleware.CurrentIdentity(c)
		if err := authSvc.Logout(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Logout failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "You have been logged out!", nil)
	}
}
