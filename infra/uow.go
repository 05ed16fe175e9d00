package infra

import (
	"context"
	"fmt"
	"reflect"

	itemrepo "github.com/amirasaad/market/infra/repository/item"
	userrepo "github.com/amirasaad/market/infra/repository/user"
	"github.com/amirasaad/market/pkg/repository"
	"github.com/amirasaad/market/pkg/repository/item"
	"github.com/amirasaad/market/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do are bound to that transaction; outside Do
// they run on the plain connection pool.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*user.Repository)(nil)): func(db *gorm.DB) any { return userrepo.New(db) },
			reflect.TypeOf((*item.Repository)(nil)): func(db *gorm.DB) any { return itemrepo.New(db) },
		},
	}
}

// Do runs fn in a transaction. Calling Do on a UoW that is already inside a
// transaction joins it instead of opening a nested one.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns the repository registered for repoType, a typed nil
// pointer such as (*user.Repository)(nil).
func (u *UoW) GetRepository(repoType any) (any, error) {
	constructor, ok := u.repoRegistry[reflect.TypeOf(repoType)]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %T", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
