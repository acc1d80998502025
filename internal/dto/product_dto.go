package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BOMLineInput attaches one material requirement to a product.
type BOMLineInput struct {
	MaterialID string          `json:"material_id" validate:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity"    validate:"required,gt=0"`
	Unit       string          `json:"unit"        validate:"required,oneof=GRAM KILOGRAM METER YARD UNIT"`
	Notes      *string         `json:"notes"`
}

type InitialInventoryInput struct {
	Quantity decimal.Decimal `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit"     validate:"required,oneof=GRAM KILOGRAM METER YARD UNIT"`
	Location string          `json:"location"`
}

type CreateProductRequest struct {
	SKU       string                  `json:"sku"    validate:"required,min=2,max=64"`
	Piece     string                  `json:"piece"  validate:"required"`
	Name      string                  `json:"name"   validate:"required,min=2,max=120"`
	Season    string                  `json:"season" validate:"required"`
	Phase     string                  `json:"phase"  validate:"required,oneof=SWATCH INITIAL_SAMPLE FIT_SAMPLE PRODUCTION_SAMPLE PRODUCTION"`
	Photos    []string                `json:"photos"`
	Notes     *string                 `json:"notes"`
	Materials []BOMLineInput          `json:"materials" validate:"omitempty,dive"`
	Inventory []InitialInventoryInput `json:"inventory" validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	Piece  *string  `json:"piece"`
	Name   *string  `json:"name"   validate:"omitempty,min=2,max=120"`
	Season *string  `json:"season"`
	Phase  *string  `json:"phase"  validate:"omitempty,oneof=SWATCH INITIAL_SAMPLE FIT_SAMPLE PRODUCTION_SAMPLE PRODUCTION"`
	Photos []string `json:"photos"`
	Notes  *string  `json:"notes"`
}

type UpdateBOMLineRequest struct {
	Quantity *decimal.Decimal `json:"quantity" validate:"omitempty,gt=0"`
	Unit     *string          `json:"unit" validate:"omitempty,oneof=GRAM KILOGRAM METER YARD UNIT"`
	Notes    *string          `json:"notes"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	SKU    string `form:"sku"`
	Name   string `form:"name"`
	Season string `form:"season"`
	Phase  string `form:"phase"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BOMLineResponse struct {
	ID       string           `json:"id"`
	Material MaterialResponse `json:"material"`
	Quantity decimal.Decimal  `json:"quantity"`
	Unit     string           `json:"unit"`
	Notes    *string          `json:"notes,omitempty"`
}

type ProductResponse struct {
	ID     string   `json:"id"`
	SKU    string   `json:"sku"`
	Piece  string   `json:"piece"`
	Name   string   `json:"name"`
	Season string   `json:"season"`
	Phase  string   `json:"phase"`
	Photos []string `json:"photos"`
	Notes  *string  `json:"notes,omitempty"`
}

type ProductDetailResponse struct {
	ProductResponse
	Materials []BOMLineResponse   `json:"materials"`
	Inventory []InventoryResponse `json:"inventory"`
}

type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
