package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AdjustInventoryRequest changes an inventory row by a signed delta and
// records an ADJUSTED movement with the given reason.
type AdjustInventoryRequest struct {
	Delta  decimal.Decimal `json:"delta"  validate:"required"`
	Reason string          `json:"reason" validate:"required,min=2"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type InventoryFilter struct {
	Type       string `form:"type" validate:"omitempty,oneof=MATERIAL PRODUCT"`
	MaterialID string `form:"material_id" validate:"omitempty,uuid"`
	ProductID  string `form:"product_id"  validate:"omitempty,uuid"`
	Location   string `form:"location"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	MaterialID *string         `json:"material_id,omitempty"`
	ProductID  *string         `json:"product_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Location   string          `json:"location"`
}

type MovementResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Reference *string         `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type DashboardResponse struct {
	Materials      int64 `json:"materials"`
	Products       int64 `json:"products"`
	Contacts       int64 `json:"contacts"`
	OpenOrders     int64 `json:"open_orders"`
	PendingArrival int64 `json:"pending_arrival"` // confirmed or shipped, not yet delivered
}
