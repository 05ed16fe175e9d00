package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/market/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{name: "duplicate key", input: gorm.ErrDuplicatedKey, expected: domain.ErrAlreadyExists},
		{name: "record not found", input: gorm.ErrRecordNotFound, expected: domain.ErrNotFound},
		{name: "foreign key", input: gorm.ErrForeignKeyViolated, expected: domain.ErrNotFound},
		{
			name:     "joined duplicate key",
			input:    errors.Join(errors.New("outer error"), gorm.ErrDuplicatedKey),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "wrapped record not found",
			input:    fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, MapGormErrorToDomain(tt.input), tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_Passthrough(t *testing.T) {
	t.Parallel()
	require.NoError(t, MapGormErrorToDomain(nil))

	orig := errors.New("some other error")
	assert.Same(t, orig, MapGormErrorToDomain(orig))
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrDuplicatedKey }), domain.ErrAlreadyExists)
	assert.EqualError(t, WrapError(func() error { return errors.New("custom error") }), "custom error")
}
