package mapper

import (
	"github.com/amirasaad/market/pkg/domain/item"
	"github.com/amirasaad/market/pkg/domain/user"
	"github.com/amirasaad/market/pkg/dto"
)

// MapUserReadToDomain maps a dto.UserRead to a domain User.
func MapUserReadToDomain(u *dto.UserRead) *user.User {
	return user.NewFromData(
		u.ID,
		u.Username,
		u.Email,
		u.HashedPassword,
		u.Budget,
		u.CreatedAt,
		u.UpdatedAt,
	)
}

// MapItemReadToDomain maps a dto.ItemRead to a domain Item.
func MapItemReadToDomain(i *dto.ItemRead) *item.Item {
	it := &item.Item{
		ID:          i.ID,
		Name:        i.Name,
		Barcode:     i.Barcode,
		Description: i.Description,
		Price:       i.Price,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.OwnerID != nil {
		owner := *i.OwnerID
		it.OwnerID = &owner
	}
	return it
}

// MapItemToCreate maps a new domain Item to the DTO the repository stores.
func MapItemToCreate(i *item.Item) *dto.ItemCreate {
	return &dto.ItemCreate{
		ID:          i.ID,
		Name:        i.Name,
		Barcode:     i.Barcode,
		Description: i.Description,
		Price:       i.Price,
		OwnerID:     i.OwnerID,
	}
}
