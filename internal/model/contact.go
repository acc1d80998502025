package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a supplier, manufacturer, or customer in the address book.
type Contact struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string      `gorm:"not null"`
	Email     string      `gorm:"uniqueIndex;not null"`
	Phone     *string
	Company   *string
	Role      *string
	Type      ContactType `gorm:"type:varchar(16);not null;index"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
