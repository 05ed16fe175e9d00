package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrInvalidCredentials is returned for any failed login. It never says
	// which of username or password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when the caller has no valid identity
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotOwner is returned when a user acts on an item they do not own
	ErrNotOwner = errors.New("item is not owned by the user")
	// ErrItemUnavailable is returned when purchasing an item that already has an owner
	ErrItemUnavailable = errors.New("item not available")
	// ErrInsufficientFunds is returned when the budget does not cover the price
	ErrInsufficientFunds = errors.New("insufficient funds")
)
