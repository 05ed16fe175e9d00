package item

import (
	"time"

	"github.com/amirasaad/market/infra/repository/user"
	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
)

// Item represents an item record in the database. A NULL OwnerID means the
// item is on sale in the market.
type Item struct {
	ID          uuid.UUID    `gorm:"primaryKey;size:36"`
	Name        string       `gorm:"uniqueIndex;not null;size:30"`
	Barcode     string       `gorm:"uniqueIndex;not null;size:12"`
	Description string       `gorm:"size:1024"`
	Price       money.Amount `gorm:"not null"`
	OwnerID     *uuid.UUID   `gorm:"size:36;index"`
	Owner       *user.User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Item model.
func (Item) TableName() string {
	return "items"
}
