package dto

import (
	"time"

	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
)

// ItemStatus filters items by ownership.
type ItemStatus string

const (
	// ItemStatusAny matches every item.
	ItemStatusAny ItemStatus = ""
	// ItemStatusAvailable matches items without an owner.
	ItemStatusAvailable ItemStatus = "available"
	// ItemStatusOwned matches items that belong to some user.
	ItemStatusOwned ItemStatus = "owned"
)

// ItemCreate represents the data needed to persist a new item.
type ItemCreate struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Barcode     string       `json:"barcode"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	OwnerID     *uuid.UUID   `json:"owner_id,omitempty"`
}

// ItemUpdate holds the mutable descriptive fields of an item.
// Price and owner are deliberately absent.
type ItemUpdate struct {
	Name        *string `json:"name,omitempty"`
	Barcode     *string `json:"barcode,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ItemRead represents a read-optimized view of an item.
type ItemRead struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Barcode     string       `json:"barcode"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	OwnerID     *uuid.UUID   `json:"owner_id"`
	Available   bool         `json:"available"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ItemFilter narrows an item listing.
type ItemFilter struct {
	Status  ItemStatus
	OwnerID *uuid.UUID
}

// TransferResult is the outcome of a purchase or sale.
type TransferResult struct {
	Item   *ItemRead    `json:"item"`
	Budget money.Amount `json:"budget"`
}

