package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyValue is one entry in a material's free-form properties bag,
// e.g. {"label": "Thread weight", "value": "30/2", "type": "text"}.
type PropertyValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// PropertyMap stores material properties as an unordered string-keyed map
// persisted in a JSONB column.
type PropertyMap map[string]PropertyValue

func (p PropertyMap) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *PropertyMap) Scan(src interface{}) error {
	if src == nil {
		*p = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errors.New("PropertyMap: expected []byte from database")
	}
	return json.Unmarshal(b, p)
}

// Material represents a purchasable raw input (fabric, trim, thread, etc.).
// Referenced — never copied — by BOM lines, inventory rows, and order items.
type Material struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type               string          `gorm:"index;not null"`
	Color              string          `gorm:"not null"`
	ColorCode          string          `gorm:"index;not null"`
	Brand              string          `gorm:"not null"`
	DefaultUnit        MeasurementUnit `gorm:"type:varchar(16);not null;default:'UNIT'"`
	DefaultCostPerUnit decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	Currency           string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Properties         PropertyMap     `gorm:"type:jsonb"`
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Inventory []Inventory       `gorm:"foreignKey:MaterialID"`
	Products  []ProductMaterial `gorm:"foreignKey:MaterialID"`
}
