package user

import (
	"context"
	"errors"

	"github.com/amirasaad/market/infra/repository"
	"github.com/amirasaad/market/pkg/domain"
	domainuser "github.com/amirasaad/market/pkg/domain/user"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

// New returns a gorm-backed user.Repository.
func New(db *gorm.DB) user.Repository {
	return &repo{db: db}
}

func (r *repo) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:       create.ID,
		Username: create.Username,
		Email:    create.Email,
		Password: create.Password,
		Budget:   create.Budget,
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	})
}

func (r *repo) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]any)
	if uu.Username != nil {
		updates["username"] = *uu.Username
	}
	if uu.Email != nil {
		updates["email_address"] = *uu.Email
	}
	if uu.Password != nil {
		updates["password_hash"] = *uu.Password
	}
	if len(updates) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainuser.ErrUserNotFound
	}
	return nil
}

func (r *repo) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repo) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	return r.first(ctx, "email_address = ?", email)
}

func (r *repo) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *repo) first(ctx context.Context, query string, arg any) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainuser.ErrUserNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repo) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainuser.ErrUserNotFound
	}
	return nil
}

func (r *repo) List(
	ctx context.Context,
	page, pageSize int,
) ([]*dto.UserRead, error) {
	q := r.db.WithContext(ctx).Order("username")
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	var users []User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func (r *repo) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.exists(ctx, "email_address = ?", email)
}

func (r *repo) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *repo) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdjustBudget applies delta in a single guarded UPDATE. When no row matches,
// the user is looked up once more to tell a missing user from a short budget.
func (r *repo) AdjustBudget(
	ctx context.Context,
	id uuid.UUID,
	delta money.Amount,
) error {
	res := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND budget + ? >= 0", id, delta).
		Update("budget", gorm.Expr("budget + ?", delta))
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}
	found, err := r.exists(ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if !found {
		return domainuser.ErrUserNotFound
	}
	return domain.ErrInsufficientFunds
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		HashedPassword: u.Password,
		Budget:         u.Budget,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ user.Repository = (*repo)(nil)
