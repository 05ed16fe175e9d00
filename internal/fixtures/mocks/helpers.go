package mocks

import (
	"context"

	"github.com/amirasaad/market/pkg/repository"
	mock "github.com/stretchr/testify/mock"
)

// PassThrough makes Do run fn against the mock itself, which is how the
// real UnitOfWork behaves minus the transaction.
func (_m *MockUnitOfWork) PassThrough() *MockUnitOfWork {
	_m.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(_m)
		}).Maybe()
	return _m
}
