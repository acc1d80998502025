package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nmacchitella/fashion-inventory/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateMaterialRequest struct {
	Type               string            `json:"type"                  validate:"required,min=1,max=120"`
	Color              string            `json:"color"                 validate:"required"`
	ColorCode          string            `json:"color_code"            validate:"required"`
	Brand              string            `json:"brand"                 validate:"required"`
	DefaultUnit        string            `json:"default_unit"          validate:"required,oneof=GRAM KILOGRAM METER YARD UNIT"`
	DefaultCostPerUnit decimal.Decimal   `json:"default_cost_per_unit" validate:"min=0"`
	Currency           string            `json:"currency"              validate:"required,len=3"`
	Properties         model.PropertyMap `json:"properties"`
	Notes              *string           `json:"notes"`
}

type UpdateMaterialRequest struct {
	Type               *string           `json:"type"                  validate:"omitempty,min=1,max=120"`
	Color              *string           `json:"color"`
	ColorCode          *string           `json:"color_code"`
	Brand              *string           `json:"brand"`
	DefaultUnit        *string           `json:"default_unit"          validate:"omitempty,oneof=GRAM KILOGRAM METER YARD UNIT"`
	DefaultCostPerUnit *decimal.Decimal  `json:"default_cost_per_unit"`
	Currency           *string           `json:"currency"              validate:"omitempty,len=3"`
	Properties         model.PropertyMap `json:"properties"`
	Notes              *string           `json:"notes"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type MaterialFilter struct {
	Type  string `form:"type"`
	Color string `form:"color"`
	Brand string `form:"brand"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialResponse struct {
	ID                 string            `json:"id"`
	Type               string            `json:"type"`
	Color              string            `json:"color"`
	ColorCode          string            `json:"color_code"`
	Brand              string            `json:"brand"`
	DefaultUnit        string            `json:"default_unit"`
	DefaultCostPerUnit decimal.Decimal   `json:"default_cost_per_unit"`
	Currency           string            `json:"currency"`
	Properties         model.PropertyMap `json:"properties,omitempty"`
	Notes              *string           `json:"notes,omitempty"`
}

type MaterialListResponse struct {
	Data       []MaterialResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// MaterialUsage is one product that consumes the material.
type MaterialUsage struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

type MaterialDetailResponse struct {
	MaterialResponse
	UsedBy    []MaterialUsage     `json:"used_by"`
	Inventory []InventoryResponse `json:"inventory"`
}
