package mapper

import (
	"testing"
	"time"

	"github.com/amirasaad/market/pkg/dto"
	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMapItemReadToDomain(t *testing.T) {
	owner := uuid.New()
	read := &dto.ItemRead{
		ID:      uuid.New(),
		Name:    "Laptop",
		Barcode: "123985473165",
		Price:   money.MustParse("900"),
		OwnerID: &owner,
	}
	it := MapItemReadToDomain(read)
	assert.Equal(t, read.ID, it.ID)
	assert.True(t, it.OwnedBy(owner))

	// The domain copy does not alias the DTO's owner pointer.
	*read.OwnerID = uuid.New()
	assert.True(t, it.OwnedBy(owner))

	read.OwnerID = nil
	assert.True(t, MapItemReadToDomain(read).IsAvailable())
}

func TestMapUserReadToDomain(t *testing.T) {
	now := time.Now()
	read := &dto.UserRead{
		ID:             uuid.New(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "hash",
		Budget:         money.MustParse("1000"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	u := MapUserReadToDomain(read)
	assert.Equal(t, read.ID, u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.True(t, u.CanAfford(money.MustParse("1000")))
}
