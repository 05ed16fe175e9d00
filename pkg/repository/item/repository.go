package item

import (
	"context"

	"github.com/amirasaad/market/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for item data access operations.
//
// ClaimOwnership and ReleaseOwnership are compare-and-set updates on owner_id:
// they touch the row only when its current owner matches the expectation, so
// two concurrent buyers cannot both win.
type Repository interface {
	Create(ctx context.Context, create *dto.ItemCreate) error
	Update(ctx context.Context, id uuid.UUID, update *dto.ItemUpdate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.ItemRead, error)
	GetByName(ctx context.Context, name string) (*dto.ItemRead, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ItemRead, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns items matching filter, ordered by name.
	List(ctx context.Context, filter dto.ItemFilter) ([]*dto.ItemRead, error)

	// ListByOwner returns the items owned by ownerID, ordered by name.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dto.ItemRead, error)

	// ExistsByNameOrBarcode reports whether an item already uses name or barcode.
	ExistsByNameOrBarcode(ctx context.Context, name, barcode string) (bool, error)

	// ClaimOwnership sets owner_id to ownerID if the item has no owner.
	// Returns domain.ErrItemUnavailable when the item is already owned.
	ClaimOwnership(ctx context.Context, id, ownerID uuid.UUID) error

	// ReleaseOwnership clears owner_id if it currently equals ownerID.
	// Returns domain.ErrNotOwner otherwise.
	ReleaseOwnership(ctx context.Context, id, ownerID uuid.UUID) error

	// AssignOwner sets owner_id unconditionally. A nil ownerID returns the
	// item to the market. Admin use only.
	AssignOwner(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) error

	// ReleaseAllByOwner returns every item owned by ownerID to the market.
	ReleaseAllByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
