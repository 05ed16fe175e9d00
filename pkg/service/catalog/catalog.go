// Package catalog holds the administrative operations used by the console:
// seeding and editing the item store and inspecting ownership.
package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/domain/item"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/mapper"
	"github.com/amirasaad/market/pkg/repository"
	itemrepo "github.com/amirasaad/market/pkg/repository/item"
	userrepo "github.com/amirasaad/market/pkg/repository/user"
	"github.com/amirasaad/market/pkg/validation"
	"github.com/google/uuid"
)

// Entry is an item together with its owner, if any.
type Entry struct {
	Item  *dto.ItemRead
	Owner *dto.UserRead
}

// SeedResult lists which items a seeding run added and which it skipped
// because an item with the same name or barcode already existed.
type SeedResult struct {
	Added   []string
	Skipped []string
}

// Service provides the admin operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new catalog Service.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// CountItems returns the number of items in the store.
func (s *Service) CountItems(ctx context.Context) (int, error) {
	items, err := s.ListItems(ctx)
	return len(items), err
}

// SeedItems adds each item whose name and barcode are both unused.
func (s *Service) SeedItems(
	ctx context.Context,
	seed []validation.NewItem,
) (res SeedResult, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		for _, in := range seed {
			exists, err := repo.ExistsByNameOrBarcode(ctx, in.Name, in.Barcode)
			if err != nil {
				return err
			}
			if exists {
				res.Skipped = append(res.Skipped, in.Name)
				continue
			}
			if _, err := s.create(ctx, repo, in); err != nil {
				return err
			}
			res.Added = append(res.Added, in.Name)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	s.logger.Info("Seeded items", "added", len(res.Added), "skipped", len(res.Skipped))
	return res, nil
}

// AddItem validates and stores a single item.
func (s *Service) AddItem(
	ctx context.Context,
	in validation.NewItem,
) (it *dto.ItemRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		it, err = s.create(ctx, repo, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Item added", "itemID", it.ID, "name", it.Name)
	return it, nil
}

func (s *Service) create(
	ctx context.Context,
	repo itemrepo.Repository,
	in validation.NewItem,
) (*dto.ItemRead, error) {
	errs, err := validation.ValidateItem(ctx, repo, in)
	if err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	newItem, err := item.New(in.Name, in.Barcode, in.Description, in.Price)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, mapper.MapItemToCreate(newItem)); err != nil {
		return nil, err
	}
	return repo.Get(ctx, newItem.ID)
}

// ListItems returns every item with its owner.
func (s *Service) ListItems(ctx context.Context) (entries []Entry, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		all, err := items.List(ctx, dto.ItemFilter{})
		if err != nil {
			return err
		}
		owners := make(map[uuid.UUID]*dto.UserRead)
		for _, it := range all {
			e := Entry{Item: it}
			if it.OwnerID != nil {
				owner, ok := owners[*it.OwnerID]
				if !ok {
					if owner, err = users.Get(ctx, *it.OwnerID); err != nil {
						return err
					}
					owners[*it.OwnerID] = owner
				}
				e.Owner = owner
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		entries = nil
	}
	return
}

// ListUsers returns every user with the items they own.
func (s *Service) ListUsers(ctx context.Context) (profiles []*dto.UserProfile, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		all, err := users.List(ctx, 0, 0)
		if err != nil {
			return err
		}
		for _, u := range all {
			owned, err := items.ListByOwner(ctx, u.ID)
			if err != nil {
				return err
			}
			profiles = append(profiles, &dto.UserProfile{User: u, Items: owned})
		}
		return nil
	})
	if err != nil {
		profiles = nil
	}
	return
}

// FindItem looks an item up by id or, failing that, by exact name.
func (s *Service) FindItem(ctx context.Context, ref string) (it *dto.ItemRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		it, err = findItem(ctx, repo, ref)
		return err
	})
	if err != nil {
		it = nil
	}
	return
}

// DeleteItem removes the item named by ref (id or name).
func (s *Service) DeleteItem(ctx context.Context, ref string) (it *dto.ItemRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		if it, err = findItem(ctx, repo, ref); err != nil {
			return err
		}
		return repo.Delete(ctx, it.ID)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Item deleted", "itemID", it.ID, "name", it.Name)
	return it, nil
}

// AssignOwner gives the item to the user without touching any budget.
// An empty userRef returns the item to the market.
func (s *Service) AssignOwner(
	ctx context.Context,
	itemRef, userRef string,
) (it *dto.ItemRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		target, err := findItem(ctx, items, itemRef)
		if err != nil {
			return err
		}
		var ownerID *uuid.UUID
		if userRef != "" {
			u, err := findUser(ctx, users, userRef)
			if err != nil {
				return err
			}
			ownerID = &u.ID
		}
		if err := items.AssignOwner(ctx, target.ID, ownerID); err != nil {
			return err
		}
		it, err = items.Get(ctx, target.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Item owner assigned", "itemID", it.ID, "ownerID", it.OwnerID)
	return it, nil
}

// VerifyOwnership reports whether the user currently owns the item.
func (s *Service) VerifyOwnership(
	ctx context.Context,
	itemRef, userRef string,
) (owned bool, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		it, err := findItem(ctx, items, itemRef)
		if err != nil {
			return err
		}
		u, err := findUser(ctx, users, userRef)
		if err != nil {
			return err
		}
		owned = mapper.MapItemReadToDomain(it).OwnedBy(u.ID)
		return nil
	})
	return
}

// DeleteUser returns the user's items to the market and removes the user.
func (s *Service) DeleteUser(ctx context.Context, userRef string) (released int64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[itemrepo.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := findUser(ctx, users, userRef)
		if err != nil {
			return err
		}
		if released, err = items.ReleaseAllByOwner(ctx, u.ID); err != nil {
			return err
		}
		return users.Delete(ctx, u.ID)
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("User deleted", "user", userRef, "released_items", released)
	return released, nil
}

func findItem(ctx context.Context, repo itemrepo.Repository, ref string) (*dto.ItemRead, error) {
	if id, err := uuid.Parse(ref); err == nil {
		it, err := repo.Get(ctx, id)
		if !errors.Is(err, domain.ErrNotFound) {
			return it, err
		}
	}
	return repo.GetByName(ctx, ref)
}

func findUser(ctx context.Context, repo userrepo.Repository, ref string) (*dto.UserRead, error) {
	if id, err := uuid.Parse(ref); err == nil {
		u, err := repo.Get(ctx, id)
		if !errors.Is(err, domain.ErrNotFound) {
			return u, err
		}
	}
	return repo.GetByUsername(ctx, ref)
}
