package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/utils"
	"github.com/google/uuid"
)

// DefaultStartingBudget is granted to every new user unless configured otherwise.
var DefaultStartingBudget = money.Cents(100000)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user %w", domain.ErrNotFound)
	// ErrUserUnauthorized is returned when the caller is not logged in.
	ErrUserUnauthorized = fmt.Errorf("user %w", domain.ErrUnauthorized)
)

// User represents a registered market user.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email_address"`
	PasswordHash string       `json:"-"`
	Budget       money.Amount `json:"budget"`
	CreatedAt    time.Time    `json:"created"`
	UpdatedAt    time.Time    `json:"updated"`
}

// New creates a new User with a hashed password and the given starting budget.
// Field-level rules (length, syntax, uniqueness) are the validation package's job;
// New only guards the invariants the entity cannot live without.
func New(username, email, password string, budget money.Amount) (*User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	if budget.IsNegative() {
		return nil, money.ErrNegativeAmount
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Budget:       budget,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewFromData creates a User from raw data (used for DB hydration).
func NewFromData(
	id uuid.UUID,
	username, email, passwordHash string,
	budget money.Amount,
	created, updated time.Time,
) *User {
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Budget:       budget,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}
}

// CanAfford reports whether the budget covers the price.
func (u *User) CanAfford(price money.Amount) bool {
	return u.Budget.GreaterThanOrEqual(price)
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return utils.CheckPasswordHash(password, u.PasswordHash)
}
