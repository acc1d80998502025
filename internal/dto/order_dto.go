package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemInput struct {
	MaterialID string          `json:"material_id" validate:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity"    validate:"required"`
	Unit       string          `json:"unit"        validate:"required,oneof=GRAM KILOGRAM METER YARD UNIT"`
	UnitPrice  decimal.Decimal `json:"unit_price"  validate:"min=0"`
	Notes      *string         `json:"notes"`
}

type CreateOrderRequest struct {
	OrderNumber      string           `json:"order_number"      validate:"required,min=1,max=64"`
	Supplier         string           `json:"supplier"          validate:"required"`
	Items            []OrderItemInput `json:"items"             validate:"omitempty,dive"`
	Currency         string           `json:"currency"          validate:"required,len=3"`
	OrderDate        time.Time        `json:"order_date"        validate:"required"`
	ExpectedDelivery time.Time        `json:"expected_delivery" validate:"required"`
	Status           string           `json:"status"            validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	Notes            *string          `json:"notes"`
}

type UpdateOrderRequest struct {
	Supplier         *string          `json:"supplier"`
	Currency         *string          `json:"currency" validate:"omitempty,len=3"`
	OrderDate        *time.Time       `json:"order_date"`
	ExpectedDelivery *time.Time       `json:"expected_delivery"`
	ActualDelivery   *time.Time       `json:"actual_delivery"`
	Status           *string          `json:"status"   validate:"omitempty,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	Notes            *string          `json:"notes"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type OrderFilter struct {
	Status   string `form:"status" validate:"omitempty,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	Supplier string `form:"supplier"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ID         string           `json:"id"`
	Material   MaterialResponse `json:"material"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Unit       string           `json:"unit"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	Notes      *string          `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      string              `json:"order_number"`
	Supplier         string              `json:"supplier"`
	Items            []OrderItemResponse `json:"items"`
	TotalPrice       decimal.Decimal     `json:"total_price"`
	Currency         string              `json:"currency"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery time.Time           `json:"expected_delivery"`
	ActualDelivery   *time.Time          `json:"actual_delivery,omitempty"`
	Status           string              `json:"status"`
	Notes            *string             `json:"notes,omitempty"`
}

type OrderListResponse struct {
	Data       []OrderResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
