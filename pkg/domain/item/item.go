// Package item holds the market item entity and the ownership rules
// applied on purchase and sale.
package item

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/domain/user"
	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrItemNotFound is returned when an item cannot be found.
	ErrItemNotFound = fmt.Errorf("item %w", domain.ErrNotFound)
	// ErrPriceMustBePositive is returned when creating an item with a zero or negative price.
	ErrPriceMustBePositive = errors.New("item price must be positive")
	// ErrNilUser is returned when a purchase is validated without a buyer.
	ErrNilUser = errors.New("nil user")
)

// Item is a product in the market. A nil OwnerID means it is available for purchase.
//
// Invariants:
//   - Price is positive and never changes after creation.
//   - OwnerID, when set, references an existing user.
type Item struct {
	ID          uuid.UUID
	Name        string
	Barcode     string
	Description string
	Price       money.Amount
	OwnerID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates an unowned item.
func New(name, barcode, description string, price money.Amount) (*Item, error) {
	if name == "" {
		return nil, errors.New("item name cannot be empty")
	}
	if barcode == "" {
		return nil, errors.New("item barcode cannot be empty")
	}
	if !price.IsPositive() {
		return nil, ErrPriceMustBePositive
	}
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Barcode:     barcode,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsAvailable reports whether the item can be bought from the market.
func (i *Item) IsAvailable() bool {
	return i.OwnerID == nil
}

// OwnedBy reports whether userID currently owns the item.
func (i *Item) OwnedBy(userID uuid.UUID) bool {
	return i.OwnerID != nil && *i.OwnerID == userID
}

// ValidatePurchase checks that buyer may purchase the item.
// Availability is checked before funds.
func (i *Item) ValidatePurchase(buyer *user.User) error {
	if buyer == nil {
		return ErrNilUser
	}
	if !i.IsAvailable() {
		return domain.ErrItemUnavailable
	}
	if !buyer.CanAfford(i.Price) {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// ValidateSell checks that sellerID may sell the item back to the market.
func (i *Item) ValidateSell(sellerID uuid.UUID) error {
	if !i.OwnedBy(sellerID) {
		return domain.ErrNotOwner
	}
	return nil
}
