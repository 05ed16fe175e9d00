package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
)

// ItemLookup is the read-only view of the item store needed for uniqueness checks.
type ItemLookup interface {
	GetByName(ctx context.Context, name string) (*dto.ItemRead, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ItemRead, error)
}

// NewItem is the input for adding an item to the store.
type NewItem struct {
	Name        string       `json:"name" validate:"required,max=30"`
	Barcode     string       `json:"barcode" validate:"required,len=12,numeric"`
	Description string       `json:"description" validate:"max=1024"`
	Price       money.Amount `json:"price"`
}

// ValidateItem applies the field rules and checks that name and barcode are unused.
func ValidateItem(ctx context.Context, items ItemLookup, in NewItem) (Errors, error) {
	errs, err := Struct(in)
	if err != nil {
		return nil, err
	}
	if !in.Price.IsPositive() {
		errs.add("price", "Price must be greater than zero.")
	}

	if !errs.Has("name") {
		taken, err := found(items.GetByName(ctx, in.Name))
		if err != nil {
			return nil, err
		}
		if taken {
			errs.add("name", fmt.Sprintf("Item name %q is already in use.", in.Name))
		}
	}
	if !errs.Has("barcode") {
		taken, err := found(items.GetByBarcode(ctx, in.Barcode))
		if err != nil {
			return nil, err
		}
		if taken {
			errs.add("barcode", fmt.Sprintf("Barcode %q is already in use.", in.Barcode))
		}
	}
	return errs, nil
}

func found(it *dto.ItemRead, err error) (bool, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return it != nil, nil
}
