package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a sellable finished item identified by its SKU.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU       string    `gorm:"uniqueIndex;not null"`
	Piece     string    `gorm:"not null"`
	Name      string    `gorm:"index;not null"`
	Season    string    `gorm:"not null"`
	Phase     Phase     `gorm:"type:varchar(24);not null;default:'SWATCH'"`
	Photos    []string  `gorm:"serializer:json"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Materials []ProductMaterial `gorm:"foreignKey:ProductID"`
	Inventory []Inventory       `gorm:"foreignKey:ProductID"`
}
