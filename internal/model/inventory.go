package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventory is an on-hand quantity of either a material or a product
// at a given location. Exactly one of MaterialID / ProductID is set,
// according to Type.
type Inventory struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type       InventoryType   `gorm:"type:varchar(16);not null;index"`
	MaterialID *uuid.UUID      `gorm:"type:uuid;index"`
	ProductID  *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	Unit       MeasurementUnit `gorm:"type:varchar(16);not null"`
	Location   string          `gorm:"not null;default:'WAREHOUSE'"`
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Material  *Material           `gorm:"foreignKey:MaterialID"`
	Product   *Product            `gorm:"foreignKey:ProductID"`
	Movements []InventoryMovement `gorm:"foreignKey:InventoryID"`
}

func (Inventory) TableName() string { return "inventory" }

// InventoryMovement records each change to an inventory row, positive for
// intake and negative for consumption.
type InventoryMovement struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InventoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        MovementType    `gorm:"type:varchar(16);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Unit        MeasurementUnit `gorm:"type:varchar(16);not null"`
	// Reference points back at whatever caused the movement (order number,
	// production batch, manual adjustment note).
	Reference *string
	Notes     *string
	CreatedAt time.Time

	Inventory *Inventory `gorm:"foreignKey:InventoryID"`
}
