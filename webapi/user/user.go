// Package user serves the caller's own profile.
package user

import (
	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/middleware"
	authsvc "github.com/amirasaad/market/pkg/service/auth"
	usersvc "github.com/amirasaad/market/pkg/service/user"
	"github.com/amirasaad/market/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(
	app *fiber.App,
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	app.Get("/user/me", append(middleware.Protected(cfg.Auth.Jwt, authSvc), Me(userSvc))...)
}

// Me returns the caller's profile.
// @Summary Current user
// @Description Return the logged-in user, their budget and the items they own
// @Tags users
// @Produce json
// @Success 200 {object} common.Response{data=Profile}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [get]
// @Security BearerAuth
func Me(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := middleware.CurrentIdentity(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		p, err := userSvc.GetProfile(c.Context(), id.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load profile", err)
		}
		if p.Items == nil {
			p.Items = []*dto.ItemRead{}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", Profile{User: p.User, Items: p.Items})
	}
}
