package infra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirasaad/market/infra"
	"github.com/amirasaad/market/pkg/domain"
	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/repository"
	"github.com/amirasaad/market/pkg/repository/item"
	"github.com/amirasaad/market/pkg/repository/user"
	"github.com/amirasaad/market/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite_OwnershipCompareAndSet(t *testing.T) {
	ctx := context.Background()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	alice := testutils.NewTestUser(t, uow, "alice", money.MustParse("1000"))
	bob := testutils.NewTestUser(t, uow, "bob", money.MustParse("1000"))
	laptop := testutils.NewTestItem(t, uow, "Laptop", "123985473165", money.MustParse("900"))

	items, err := repository.Get[item.Repository](uow)
	require.NoError(t, err)

	require.NoError(t, items.ClaimOwnership(ctx, laptop.ID, alice.ID))
	assert.ErrorIs(t, items.ClaimOwnership(ctx, laptop.ID, bob.ID), domain.ErrItemUnavailable)
	assert.ErrorIs(t, items.ReleaseOwnership(ctx, laptop.ID, bob.ID), domain.ErrNotOwner)
	assert.ErrorIs(t, items.ClaimOwnership(ctx, uuid.New(), bob.ID), domain.ErrNotFound)

	owned, err := items.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.False(t, owned[0].Available)

	require.NoError(t, items.ReleaseOwnership(ctx, laptop.ID, alice.ID))
	got, err := items.Get(ctx, laptop.ID)
	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Nil(t, got.OwnerID)
}

func TestSQLite_AdjustBudgetGuard(t *testing.T) {
	ctx := context.Background()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	alice := testutils.NewTestUser(t, uow, "alice", money.MustParse("100"))

	users, err := repository.Get[user.Repository](uow)
	require.NoError(t, err)

	require.NoError(t, users.AdjustBudget(ctx, alice.ID, money.MustParse("-100")))
	assert.ErrorIs(t, users.AdjustBudget(ctx, alice.ID, money.MustParse("-0.01")), domain.ErrInsufficientFunds)
	require.NoError(t, users.AdjustBudget(ctx, alice.ID, money.MustParse("25.50")))
	assert.ErrorIs(t, users.AdjustBudget(ctx, uuid.New(), money.MustParse("1")), domain.ErrNotFound)

	got, err := users.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, money.MustParse("25.50"), got.Budget)
}

func TestSQLite_RollbackLeavesNothing(t *testing.T) {
	ctx := context.Background()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	alice := testutils.NewTestUser(t, uow, "alice", money.MustParse("1000"))
	mouse := testutils.NewTestItem(t, uow, "Mouse", "456789123456", money.MustParse("50"))
	boom := errors.New("boom")

	err := uow.Do(ctx, func(uow repository.UnitOfWork) error {
		items, err := repository.Get[item.Repository](uow)
		if err != nil {
			return err
		}
		users, err := repository.Get[user.Repository](uow)
		if err != nil {
			return err
		}
		if err := items.ClaimOwnership(ctx, mouse.ID, alice.ID); err != nil {
			return err
		}
		if err := users.AdjustBudget(ctx, alice.ID, -mouse.Price); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	users, _ := repository.Get[user.Repository](uow)
	items, _ := repository.Get[item.Repository](uow)
	gotUser, err := users.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, money.MustParse("1000"), gotUser.Budget)
	gotItem, err := items.Get(ctx, mouse.ID)
	require.NoError(t, err)
	assert.True(t, gotItem.Available)
}

func TestSQLite_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	testutils.NewTestUser(t, uow, "alice", money.Zero)
	testutils.NewTestItem(t, uow, "Laptop", "123985473165", money.MustParse("900"))

	users, _ := repository.Get[user.Repository](uow)
	err := users.Create(ctx, &dto.UserCreate{
		ID: uuid.New(), Username: "alice", Email: "other@example.com", Password: "x",
	})
	assert.Error(t, err)

	items, _ := repository.Get[item.Repository](uow)
	err = items.Create(ctx, &dto.ItemCreate{
		ID: uuid.New(), Name: "Other", Barcode: "123985473165", Price: money.MustParse("1"),
	})
	assert.Error(t, err)

	exists, err := items.ExistsByNameOrBarcode(ctx, "Nope", "123985473165")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = items.ExistsByNameOrBarcode(ctx, "Nope", "000000000000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLite_DeleteUserReleasesItems(t *testing.T) {
	ctx := context.Background()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	alice := testutils.NewTestUser(t, uow, "alice", money.MustParse("1000"))
	kb := testutils.NewTestItem(t, uow, "Keyboard", "231985128446", money.MustParse("150"))

	items, _ := repository.Get[item.Repository](uow)
	users, _ := repository.Get[user.Repository](uow)
	require.NoError(t, items.AssignOwner(ctx, kb.ID, &alice.ID))
	require.NoError(t, users.Delete(ctx, alice.ID))

	got, err := items.Get(ctx, kb.ID)
	require.NoError(t, err)
	assert.True(t, got.Available, "owner_id is set to NULL when the owner is deleted")
	assert.ErrorIs(t, users.Delete(ctx, alice.ID), domain.ErrNotFound)
}

func TestSQLite_ListFilter(t *testing.T) {
	ctx := context.Background()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	alice := testutils.NewTestUser(t, uow, "alice", money.MustParse("1000"))
	laptop := testutils.NewTestItem(t, uow, "Laptop", "123985473165", money.MustParse("900"))
	testutils.NewTestItem(t, uow, "Mouse", "456789123456", money.MustParse("50"))

	items, _ := repository.Get[item.Repository](uow)
	require.NoError(t, items.AssignOwner(ctx, laptop.ID, &alice.ID))

	all, err := items.List(ctx, dto.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Laptop", all[0].Name)

	available, err := items.List(ctx, dto.ItemFilter{Status: dto.ItemStatusAvailable})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Mouse", available[0].Name)

	owned, err := items.List(ctx, dto.ItemFilter{Status: dto.ItemStatusOwned})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Laptop", owned[0].Name)

	_, err = items.List(ctx, dto.ItemFilter{Status: "sold"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
