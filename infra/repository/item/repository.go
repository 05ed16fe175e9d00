package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/market/infra/repository"
	"github.com/amirasaad/market/pkg/domain"
	domainitem "github.com/amirasaad/market/pkg/domain/item"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/repository/item"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New returns a gorm-backed item.Repository.
func New(db *gorm.DB) item.Repository {
	return &repo{db: db}
}

func (r *repo) Create(
	ctx context.Context,
	create *dto.ItemCreate,
) error {
	it := &Item{
		ID:          create.ID,
		Name:        create.Name,
		Barcode:     create.Barcode,
		Description: create.Description,
		Price:       create.Price,
		OwnerID:     create.OwnerID,
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Omit("Owner").Create(it).Error
	})
}

func (r *repo) Update(
	ctx context.Context,
	id uuid.UUID,
	iu *dto.ItemUpdate,
) error {
	updates := make(map[string]any)
	if iu.Name != nil {
		updates["name"] = *iu.Name
	}
	if iu.Barcode != nil {
		updates["barcode"] = *iu.Barcode
	}
	if iu.Description != nil {
		updates["description"] = *iu.Description
	}
	if len(updates) == 0 {
		return nil
	}
	return r.updateOne(r.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Updates(updates))
}

func (r *repo) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.ItemRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repo) GetByName(
	ctx context.Context,
	name string,
) (*dto.ItemRead, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *repo) GetByBarcode(
	ctx context.Context,
	barcode string,
) (*dto.ItemRead, error) {
	return r.first(ctx, "barcode = ?", barcode)
}

func (r *repo) first(ctx context.Context, query string, arg any) (*dto.ItemRead, error) {
	var it Item
	if err := r.db.WithContext(ctx).Where(query, arg).First(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainitem.ErrItemNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&it), nil
}

func (r *repo) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.updateOne(r.db.WithContext(ctx).Delete(&Item{}, "id = ?", id))
}

func (r *repo) List(
	ctx context.Context,
	filter dto.ItemFilter,
) ([]*dto.ItemRead, error) {
	q := r.db.WithContext(ctx).Order("name")
	switch filter.Status {
	case dto.ItemStatusAny:
	case dto.ItemStatusAvailable:
		q = q.Where("owner_id IS NULL")
	case dto.ItemStatusOwned:
		q = q.Where("owner_id IS NOT NULL")
	default:
		return nil, fmt.Errorf("%w: unknown item status %q", domain.ErrValidation, filter.Status)
	}
	if filter.OwnerID != nil {
		q = q.Where("owner_id = ?", *filter.OwnerID)
	}
	return r.find(q)
}

func (r *repo) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*dto.ItemRead, error) {
	return r.List(ctx, dto.ItemFilter{OwnerID: &ownerID})
}

func (r *repo) find(q *gorm.DB) ([]*dto.ItemRead, error) {
	var items []Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.ItemRead, 0, len(items))
	for i := range items {
		result = append(result, mapModelToDTO(&items[i]))
	}
	return result, nil
}

func (r *repo) ExistsByNameOrBarcode(
	ctx context.Context,
	name, barcode string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Item{}).
		Where("name = ? OR barcode = ?", name, barcode).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) ClaimOwnership(
	ctx context.Context,
	id, ownerID uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Model(&Item{}).
		Where("id = ? AND owner_id IS NULL", id).
		Update("owner_id", ownerID)
	return r.casResult(ctx, res, id, domain.ErrItemUnavailable)
}

func (r *repo) ReleaseOwnership(
	ctx context.Context,
	id, ownerID uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Model(&Item{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("owner_id", nil)
	return r.casResult(ctx, res, id, domain.ErrNotOwner)
}

func (r *repo) AssignOwner(
	ctx context.Context,
	id uuid.UUID,
	ownerID *uuid.UUID,
) error {
	return r.updateOne(r.db.WithContext(ctx).Model(&Item{}).
		Where("id = ?", id).
		Update("owner_id", ownerID))
}

func (r *repo) ReleaseAllByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Item{}).
		Where("owner_id = ?", ownerID).
		Update("owner_id", nil)
	if res.Error != nil {
		return 0, repository.MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected, nil
}

// casResult turns a zero-row compare-and-set into missErr, or into
// ErrItemNotFound when the row does not exist at all.
func (r *repo) casResult(ctx context.Context, res *gorm.DB, id uuid.UUID, missErr error) error {
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&Item{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainitem.ErrItemNotFound
	}
	return missErr
}

func (r *repo) updateOne(res *gorm.DB) error {
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainitem.ErrItemNotFound
	}
	return nil
}

func mapModelToDTO(it *Item) *dto.ItemRead {
	return &dto.ItemRead{
		ID:          it.ID,
		Name:        it.Name,
		Barcode:     it.Barcode,
		Description: it.Description,
		Price:       it.Price,
		OwnerID:     it.OwnerID,
		Available:   it.OwnerID == nil,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

var _ item.Repository = (*repo)(nil)
