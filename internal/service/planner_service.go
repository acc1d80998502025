package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Catalog resolves every bill-of-materials line for a set of products in one
// batched lookup, material records included. Implemented by
// repository.ProductRepository; tests substitute an in-memory fake.
type Catalog interface {
	FindBOMLinesForProducts(ctx context.Context, ids []uuid.UUID) ([]model.ProductMaterial, error)
}

// ErrRequirementComputation wraps any failure surfaced by the catalog lookup.
// No partial results are ever returned alongside it.
var ErrRequirementComputation = errors.New("requirement computation failed")

// InvalidRequirementInputError reports a malformed plan entry by position.
// The whole computation fails; quantities are never silently clamped, to avoid
// under-provisioning a material order.
type InvalidRequirementInputError struct {
	Index  int
	Reason string
}

func (e *InvalidRequirementInputError) Error() string {
	return fmt.Sprintf("invalid requirement entry at index %d: %s", e.Index, e.Reason)
}

// PlannerService turns a production plan (which products, how many units each)
// into a consolidated shopping list of materials.
type PlannerService interface {
	ComputeRequirements(ctx context.Context, req dto.RequirementRequest) ([]dto.MaterialRequirement, error)
}

type plannerService struct {
	catalog Catalog
}

func NewPlannerService(catalog Catalog) PlannerService {
	return &plannerService{catalog: catalog}
}

// plannedEntry is a validated (product, quantity) pair.
type plannedEntry struct {
	productID uuid.UUID
	quantity  decimal.Decimal
}

// ComputeRequirements is a pure fold over catalog data: one batched lookup,
// then an in-memory accumulation keyed by material id. Safe for concurrent
// callers — it holds no state beyond request-scoped locals.
func (s *plannerService) ComputeRequirements(ctx context.Context, req dto.RequirementRequest) ([]dto.MaterialRequirement, error) {
	// Validate every entry before touching the catalog.
	entries := make([]plannedEntry, 0, len(req.Products))
	for i, e := range req.Products {
		pid, err := uuid.Parse(e.ProductID)
		if err != nil {
			return nil, &InvalidRequirementInputError{Index: i, Reason: "product_id is not a valid UUID"}
		}
		if e.Quantity.IsNegative() {
			return nil, &InvalidRequirementInputError{Index: i, Reason: "quantity must not be negative"}
		}
		// Zero quantity is legal but contributes nothing.
		if e.Quantity.IsZero() {
			continue
		}
		entries = append(entries, plannedEntry{productID: pid, quantity: e.Quantity})
	}
	if len(entries) == 0 {
		return []dto.MaterialRequirement{}, nil
	}

	// Single batched catalog lookup over the distinct product set.
	seen := make(map[uuid.UUID]bool, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if !seen[e.productID] {
			seen[e.productID] = true
			ids = append(ids, e.productID)
		}
	}
	lines, err := s.catalog.FindBOMLinesForProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequirementComputation, err)
	}

	byProduct := make(map[uuid.UUID][]model.ProductMaterial)
	for _, line := range lines {
		byProduct[line.ProductID] = append(byProduct[line.ProductID], line)
	}

	// Accumulate per material, preserving first-seen order. Duplicate plan
	// entries for the same product accumulate additively — two entries of 100
	// and 50 units total the same as a single entry of 150.
	type accumulator struct {
		requirement dto.MaterialRequirement
		unit        model.MeasurementUnit
	}
	totals := make(map[uuid.UUID]*accumulator)
	var order []uuid.UUID

	for _, e := range entries {
		for _, line := range byProduct[e.productID] {
			acc, ok := totals[line.MaterialID]
			if !ok {
				acc = &accumulator{unit: line.Unit}
				if line.Material != nil {
					acc.requirement.Material = materialToResponse(line.Material)
				} else {
					acc.requirement.Material = dto.MaterialResponse{ID: line.MaterialID.String()}
				}
				acc.requirement.Unit = string(line.Unit)
				totals[line.MaterialID] = acc
				order = append(order, line.MaterialID)
			}
			// The first-seen unit wins and raw numbers are summed without
			// conversion. Flag the line instead of silently mixing.
			if line.Unit != acc.unit {
				acc.requirement.UnitConflict = true
				log.Warn().
					Str("material_id", line.MaterialID.String()).
					Str("unit", string(acc.unit)).
					Str("conflicting_unit", string(line.Unit)).
					Msg("mixed units in requirement aggregation, summing without conversion")
			}
			acc.requirement.TotalQuantity = acc.requirement.TotalQuantity.Add(line.Quantity.Mul(e.quantity))
		}
	}

	result := make([]dto.MaterialRequirement, 0, len(order))
	for _, materialID := range order {
		result = append(result, totals[materialID].requirement)
	}
	return result, nil
}
