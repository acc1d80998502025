package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductMaterial is one bill-of-materials line: making one unit of the
// product consumes Quantity of the material, expressed in Unit.
// Multiple lines between the same (product, material) pair are legal and are
// treated as independent requirements.
type ProductMaterial struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Unit       MeasurementUnit `gorm:"type:varchar(16);not null"`
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product  *Product  `gorm:"foreignKey:ProductID"`
	Material *Material `gorm:"foreignKey:MaterialID"`
}

// TableName overrides GORM's default pluralization (product_materials is fine,
// but be explicit since the planner queries this table directly).
func (ProductMaterial) TableName() string { return "product_materials" }
