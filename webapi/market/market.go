// Package market serves the item listing and the purchase and sell actions.
package market

import (
	"fmt"

	"github.com/amirasaad/market/pkg/config"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/middleware"
	authsvc "github.com/amirasaad/market/pkg/service/auth"
	marketsvc "github.com/amirasaad/market/pkg/service/market"
	"github.com/amirasaad/market/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Routes(
	app *fiber.App,
	marketSvc *marketsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	protected := middleware.Protected(cfg.Auth.Jwt, authSvc)
	app.Get("/items", ListItems(marketSvc))
	app.Get("/items/:id", GetItem(marketSvc))
	app.Post("/items/:id/purchase", append(protected, Purchase(marketSvc))...)
	app.Post("/items/:id/sell", append(protected, Sell(marketSvc))...)
}

// ListItems lists the items in the market.
// @Summary List items
// @Description List all items, or only available or owned ones
// @Tags items
// @Produce json
// @Param status query string false "available or owned"
// @Success 200 {object} common.Response{data=[]dto.ItemRead}
// @Failure 400 {object} common.ProblemDetails
// @Router /items [get]
func ListItems(marketSvc *marketsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := dto.ItemStatus(c.Query("status"))
		switch status {
		case dto.ItemStatusAny, dto.ItemStatusAvailable, dto.ItemStatusOwned:
		default:
			return common.ProblemDetailsJSON(c, "Invalid status filter", nil,
				"status must be one of: available, owned", fiber.StatusBadRequest)
		}
		items, err := marketSvc.ListItems(c.Context(), dto.ItemFilter{Status: status})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list items", err)
		}
		if items == nil {
			items = []*dto.ItemRead{}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Items fetched", items)
	}
}

// GetItem returns a single item.
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} common.Response{data=dto.ItemRead}
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /items/{id} [get]
func GetItem(marketSvc *marketsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return invalidItemID(c, err)
		}
		it, err := marketSvc.GetItem(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Item not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Item found", it)
	}
}

// Purchase buys an item for the caller.
// @Summary Purchase item
// @Description Buy an available item; its price is deducted from the caller's budget
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} common.Response{data=TransferResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /items/{id}/purchase [post]
// @Security BearerAuth
func Purchase(marketSvc *marketsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return invalidItemID(c, err)
		}
		caller, ok := middleware.CurrentIdentity(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		res, err := marketSvc.Purchase(c.Context(), caller.UserID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Purchase failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			fmt.Sprintf("Congratulations! You purchased %s for %s", res.Item.Name, res.Item.Price),
			TransferResponse{Item: res.Item, Budget: res.Budget.String()})
	}
}

// Sell returns an owned item to the market.
// @Summary Sell item
// @Description Sell an owned item back; its price is refunded to the caller's budget
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} common.Response{data=TransferResponse}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /items/{id}/sell [post]
// @Security BearerAuth
func Sell(marketSvc *marketsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return invalidItemID(c, err)
		}
		caller, ok := middleware.CurrentIdentity(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		res, err := marketSvc.Sell(c.Context(), caller.UserID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Sale failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			fmt.Sprintf("Congratulations! You sold %s back to the market", res.Item.Name),
			TransferResponse{Item: res.Item, Budget: res.Budget.String()})
	}
}

func invalidItemID(c *fiber.Ctx, err error) error {
	return common.ProblemDetailsJSON(c, "Invalid item ID", err, "Item ID must be a valid UUID", fiber.StatusBadRequest)
}
