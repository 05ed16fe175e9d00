package user

import (
	"context"

	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Update updates an existing user by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// Get retrieves a user by its ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// GetByUsername retrieves a user by username (exact, case-sensitive).
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)

	// Delete deletes a user by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves users ordered by username. A pageSize <= 0 returns all.
	List(ctx context.Context, page, pageSize int) ([]*dto.UserRead, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// AdjustBudget adds delta (which may be negative) to the user's budget.
	// The update only applies when the resulting budget stays non-negative;
	// otherwise domain.ErrInsufficientFunds is returned and nothing changes.
	AdjustBudget(ctx context.Context, id uuid.UUID, delta money.Amount) error
}
