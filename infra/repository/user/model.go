package user

import (
	"time"

	"github.com/amirasaad/market/pkg/money"
	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID        uuid.UUID    `gorm:"primaryKey;size:36"`
	Username  string       `gorm:"uniqueIndex;not null;size:30"`
	Email     string       `gorm:"column:email_address;uniqueIndex;not null;size:50"`
	Password  string       `gorm:"column:password_hash;not null;size:60"`
	Budget    money.Amount `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
