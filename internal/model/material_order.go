package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialOrder is a purchase order for materials from a supplier.
type MaterialOrder struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber      string          `gorm:"uniqueIndex;not null"`
	Supplier         string          `gorm:"not null"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'USD'"`
	OrderDate        time.Time       `gorm:"not null"`
	ExpectedDelivery time.Time       `gorm:"not null"`
	ActualDelivery   *time.Time
	Status           OrderStatus `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	OrderItems []MaterialOrderItem `gorm:"foreignKey:OrderID"`
}

// MaterialOrderItem is one line of a purchase order.
type MaterialOrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Unit       MeasurementUnit `gorm:"type:varchar(16);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Material *Material `gorm:"foreignKey:MaterialID"`
}
