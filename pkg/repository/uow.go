package repository

import (
	"context"
	"fmt"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Repositories obtained from the UnitOfWork passed to Do share its transaction,
// so every read and write inside fn commits or rolls back together.
//
// Example usage:
//
//	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
//		repo, err := repository.Get[user.Repository](uow)
//		...
//	})
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns the repository registered for repoType, bound to
	// the current transaction. repoType is a typed nil pointer to the
	// repository interface, e.g. (*user.Repository)(nil).
	GetRepository(repoType any) (any, error)
}

// Get fetches the repository of interface type T from uow.
func Get[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoAny, err := uow.GetRepository((*T)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("repository %T does not implement %T", repoAny, (*T)(nil))
	}
	return repo, nil
}
