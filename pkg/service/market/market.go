// Package market moves items between the market and its users.
//
// Purchase and Sell each run in one transaction. The ownership change is a
// compare-and-set on owner_id and the budget change is a guarded update, so a
// lost race aborts the whole transaction with a domain error and leaves no
// partial state behind.
package market

import (
	"context"
	"log/slog"

	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/mapper"
	"github.com/amirasaad/market/pkg/repository"
	itemrepo "github.com/amirasaad/market/pkg/repository/item"
	userrepo "github.com/amirasaad/market/pkg/repository/user"
	"github.com/google/uuid"
)

// Service provides browsing and ownership transfer.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new market Service.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// ListItems returns the items matching filter, ordered by name.
func (s *Service) ListItems(
	ctx context.Context,
	filter dto.ItemFilter,
) (items []*dto.ItemRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		items, err = repo.List(ctx, filter)
		return err
	})
	if err != nil {
		items = nil
	}
	return
}

// GetItem returns one item.
func (s *Service) GetItem(
	ctx context.Context,
	itemID uuid.UUID,
) (it *dto.ItemRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		it, err = repo.Get(ctx, itemID)
		return err
	})
	if err != nil {
		it = nil
	}
	return
}

// Purchase gives itemID to userID and charges its price.
//
// Errors: item.ErrItemNotFound, user.ErrUserNotFound,
// domain.ErrItemUnavailable (checked first), domain.ErrInsufficientFunds.
func (s *Service) Purchase(
	ctx context.Context,
	userID, itemID uuid.UUID,
) (*dto.TransferResult, error) {
	log := s.logger.With("context", "Purchase", "userID", userID, "itemID", itemID)
	result, err := s.transfer(ctx, userID, itemID, func(
		items itemrepo.Repository,
		users userrepo.Repository,
		it *dto.ItemRead,
		u *dto.UserRead,
	) error {
		if err := mapper.MapItemReadToDomain(it).ValidatePurchase(mapper.MapUserReadToDomain(u)); err != nil {
			return err
		}
		if err := items.ClaimOwnership(ctx, it.ID, u.ID); err != nil {
			return err
		}
		return users.AdjustBudget(ctx, u.ID, -it.Price)
	})
	if err != nil {
		log.Info("Purchase rejected", "error", err)
		return nil, err
	}
	log.Info("Purchase completed", "price", result.Item.Price, "budget", result.Budget)
	return result, nil
}

// Sell returns itemID to the market and refunds its price to userID.
//
// Errors: item.ErrItemNotFound, user.ErrUserNotFound, domain.ErrNotOwner.
func (s *Service) Sell(
	ctx context.Context,
	userID, itemID uuid.UUID,
) (*dto.TransferResult, error) {
	log := s.logger.With("context", "Sell", "userID", userID, "itemID", itemID)
	result, err := s.transfer(ctx, userID, itemID, func(
		items itemrepo.Repository,
		users userrepo.Repository,
		it *dto.ItemRead,
		u *dto.UserRead,
	) error {
		if err := mapper.MapItemReadToDomain(it).ValidateSell(u.ID); err != nil {
			return err
		}
		if err := items.ReleaseOwnership(ctx, it.ID, u.ID); err != nil {
			return err
		}
		return users.AdjustBudget(ctx, u.ID, it.Price)
	})
	if err != nil {
		log.Info("Sale rejected", "error", err)
		return nil, err
	}
	log.Info("Sale completed", "price", result.Item.Price, "budget", result.Budget)
	return result, nil
}

type transferFunc func(
	items itemrepo.Repository,
	users userrepo.Repository,
	it *dto.ItemRead,
	u *dto.UserRead,
) error

// transfer loads the item and user, applies fn and reads back the new state,
// all inside one transaction.
func (s *Service) transfer(
	ctx context.Context,
	userID, itemID uuid.UUID,
	fn transferFunc,
) (result *dto.TransferResult, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		it, err := items.Get(ctx, itemID)
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, userID)
		if err != nil {
			return err
		}
		if err := fn(items, users, it, u); err != nil {
			return err
		}
		if it, err = items.Get(ctx, itemID); err != nil {
			return err
		}
		if u, err = users.Get(ctx, userID); err != nil {
			return err
		}
		result = &dto.TransferResult{Item: it, Budget: u.Budget}
		return nil
	})
	if err != nil {
		result = nil
	}
	return
}
