package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when a value cannot be parsed as an amount
	// or carries more than two decimal places.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an operation would result in a negative amount
	ErrNegativeAmount = errors.New("resulting amount cannot be negative")

	// ErrAmountExceedsMaxSafeInt is returned when an amount exceeds the maximum safe integer value.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)
