// Package user provides registration and profile lookups.
package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/market/pkg/domain/user"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/repository"
	itemrepo "github.com/amirasaad/market/pkg/repository/item"
	userrepo "github.com/amirasaad/market/pkg/repository/user"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/google/uuid"
)

// Service provides business logic for users.
type Service struct {
	uow            repository.UnitOfWork
	startingBudget money.Amount
	logger         *slog.Logger
}

// New creates a new Service. Registered users start with startingBudget.
func New(
	uow repository.UnitOfWork,
	startingBudget money.Amount,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:            uow,
		startingBudget: startingBudget,
		logger:         logger,
	}
}

// Register validates the sign-up and stores the user in one transaction.
// Field failures come back as validation.Errors and nothing is stored.
func (s *Service) Register(
	ctx context.Context,
	in validation.Registration,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Register", "username", in.Username)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		errs, err := validation.ValidateRegistration(ctx, repo, in)
		if err != nil {
			return err
		}
		if err := errs.Err(); err != nil {
			return err
		}
		newUser, err := user.New(in.Username, in.Email, in.Password, s.startingBudget)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &dto.UserCreate{
			ID:       newUser.ID,
			Username: newUser.Username,
			Email:    newUser.Email,
			Password: newUser.PasswordHash,
			Budget:   newUser.Budget,
		}); err != nil {
			return err
		}
		u, err = repo.Get(ctx, newUser.ID)
		return err
	})
	if err != nil {
		log.Info("Registration rejected", "error", err)
		return nil, err
	}
	log.Info("User registered", "userID", u.ID)
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(
	ctx context.Context,
	userID uuid.UUID,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// GetProfile returns the user with their budget and the items they own.
func (s *Service) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (p *dto.UserProfile, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := users.Get(ctx, userID)
		if err != nil {
			return err
		}
		owned, err := items.ListByOwner(ctx, userID)
		if err != nil {
			return err
		}
		p = &dto.UserProfile{User: u, Items: owned}
		return nil
	})
	if err != nil {
		p = nil
	}
	return
}
