package console_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/amirasaad/market/infra"
	"github.com/amirasaad/market/internal/console"
	"github.com/amirasaad/market/internal/fixtures/items"
	"github.com/amirasaad/market/pkg/money"
	"github.com/amirasaad/market/pkg/repository"
	"github.com/amirasaad/market/pkg/service/catalog"
	"github.com/amirasaad/market/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	uow     repository.UnitOfWork
	catalog *catalog.Service
	out     bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	uow := infra.NewUoW(testutils.NewTestDB(t))
	return &harness{uow: uow, catalog: catalog.New(uow, slog.Default())}
}

func (h *harness) run(t *testing.T, migrate func() error, lines ...string) string {
	t.Helper()
	h.out.Reset()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := console.New(in, &h.out, h.catalog, migrate, items.Sample(), false)
	require.NoError(t, c.Run(context.Background()))
	return h.out.String()
}

func noMigrate() error { return nil }

func TestConsole_SeedAndList(t *testing.T) {
	h := newHarness(t)

	out := h.run(t, noMigrate, "2", "3", "0")
	assert.Contains(t, out, "Added Laptop")
	assert.Contains(t, out, "Added Monitor")
	assert.Contains(t, out, "123985473165")
	assert.Contains(t, out, "900.00")
	assert.Contains(t, out, "Goodbye!")

	// Declining the confirmation leaves the store untouched.
	out = h.run(t, noMigrate, "2", "n", "0")
	assert.Contains(t, out, "already has 4 item(s)")
	assert.Contains(t, out, "Cancelled.")

	out = h.run(t, noMigrate, "2", "y", "0")
	assert.Contains(t, out, "Skipped Laptop")
	n, err := h.catalog.CountItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestConsole_AddCustomItem(t *testing.T) {
	h := newHarness(t)

	out := h.run(t, noMigrate, "4", "Chair", "000000000001", "Office chair", "75.50", "0")
	assert.Contains(t, out, "Added Chair")
	it, err := h.catalog.FindItem(context.Background(), "Chair")
	require.NoError(t, err)
	assert.Equal(t, money.MustParse("75.50"), it.Price)

	out = h.run(t, noMigrate, "4", "Desk", "12", "", "abc", "0")
	assert.Contains(t, out, "price: Price must be a number.")

	out = h.run(t, noMigrate, "4", "Desk", "12", "", "10", "0")
	assert.Contains(t, out, "barcode:")
}

func TestConsole_Ownership(t *testing.T) {
	h := newHarness(t)
	bob := testutils.NewTestUser(t, h.uow, "bob", money.MustParse("1000"))
	testutils.NewTestItem(t, h.uow, "Mouse", "456789123456", money.MustParse("50"))

	out := h.run(t, noMigrate,
		"8", "Mouse", "bob",
		"7", "Mouse", "bob",
		"8", "Mouse", "bob",
		"6",
		"0",
	)
	assert.Contains(t, out, "bob does not own Mouse.")
	assert.Contains(t, out, "Mouse now belongs to bob.")
	assert.Contains(t, out, "bob owns Mouse.")
	assert.Contains(t, out, "bob <bob@example.com>")
	assert.Contains(t, out, "  - Mouse (50.00)")

	owned, err := h.catalog.VerifyOwnership(context.Background(), "Mouse", bob.ID.String())
	require.NoError(t, err)
	assert.True(t, owned)

	out = h.run(t, noMigrate, "7", "Mouse", "", "7", "Mouse", "nobody", "0")
	assert.Contains(t, out, "Mouse is back on the market.")
	assert.Contains(t, out, "Not found:")
}

func TestConsole_DeleteItemAndUser(t *testing.T) {
	h := newHarness(t)
	testutils.NewTestUser(t, h.uow, "bob", money.MustParse("1000"))
	testutils.NewTestItem(t, h.uow, "Mouse", "456789123456", money.MustParse("50"))

	out := h.run(t, noMigrate,
		"7", "Mouse", "bob",
		"9", "bob", "y",
		"5", "Mouse", "y",
		"5", "Mouse",
		"0",
	)
	assert.Contains(t, out, "Deleted bob; 1 item(s) returned to the market.")
	assert.Contains(t, out, "Deleted Mouse")
	assert.Contains(t, out, "Not found:")

	out = h.run(t, noMigrate, "3", "6", "0")
	assert.Contains(t, out, "No items in the store.")
	assert.Contains(t, out, "No users registered.")
}

func TestConsole_CreateTables(t *testing.T) {
	h := newHarness(t)
	calls := 0
	migrate := func() error {
		calls++
		if calls > 1 {
			return errors.New("connection refused")
		}
		return nil
	}

	out := h.run(t, migrate, "1", "1", "0")
	assert.Equal(t, 2, calls)
	assert.Contains(t, out, "Database tables are up to date.")
	assert.Contains(t, out, "Error: connection refused")
}

func TestConsole_InvalidChoiceAndEOF(t *testing.T) {
	h := newHarness(t)
	h.out.Reset()
	c := console.New(strings.NewReader("x\n"), &h.out, h.catalog, noMigrate, nil, false)
	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, h.out.String(), "Invalid choice. Please try again.")
	assert.NotContains(t, h.out.String(), "Goodbye!")
}

func TestConsole_EndOfInputMidCommand(t *testing.T) {
	h := newHarness(t)

	// Input ends after the name; nothing is submitted.
	out := h.run(t, noMigrate, "4", "Chair")
	assert.NotContains(t, out, "This field is required.")
	assert.NotContains(t, out, "Goodbye!")
	n, err := h.catalog.CountItems(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	testutils.NewTestItem(t, h.uow, "Mouse", "456789123456", money.MustParse("50"))
	out = h.run(t, noMigrate, "5", "Mouse")
	assert.NotContains(t, out, "Deleted Mouse")
	_, err = h.catalog.FindItem(context.Background(), "Mouse")
	require.NoError(t, err)

	out = h.run(t, noMigrate, "7")
	assert.NotContains(t, out, "Not found:")
}
