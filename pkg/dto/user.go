package dto

import (
	"time"

	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user.
// Password carries the bcrypt hash, never the plaintext.
type UserCreate struct {
	ID       uuid.UUID    `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email_address"`
	Password string       `json:"-"`
	Budget   money.Amount `json:"budget"`
}

// UserUpdate represents the data that can be updated for a user.
// Budget is not here; it only moves through AdjustBudget.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email_address,omitempty"`
	Password *string `json:"-"`
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID             uuid.UUID    `json:"id"`
	Username       string       `json:"username"`
	HashedPassword string       `json:"-"`
	Email          string       `json:"email_address"`
	Budget         money.Amount `json:"budget"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// UserProfile is a user together with the items they own.
type UserProfile struct {
	User  *UserRead   `json:"user"`
	Items []*ItemRead `json:"items"`
}
