package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RequirementEntry is one (product, desired quantity) pair in a production plan.
type RequirementEntry struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// RequirementRequest is the input to the material-requirements calculation.
// The same product may appear more than once; each entry accumulates
// independently.
type RequirementRequest struct {
	Products []RequirementEntry `json:"products" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// MaterialRequirement is the aggregated shopping-list line for one material.
// Unit is taken from the first BOM line seen for the material; if later lines
// disagree, UnitConflict is set and the raw numbers are still summed without
// conversion.
type MaterialRequirement struct {
	Material      MaterialResponse `json:"material"`
	TotalQuantity decimal.Decimal  `json:"total_quantity"`
	Unit          string           `json:"unit"`
	UnitConflict  bool             `json:"unit_conflict,omitempty"`
}
