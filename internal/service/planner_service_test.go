package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubCatalog is an in-memory Catalog for planner tests. It records how many
// lookups were issued so tests can assert the lookup is batched.
type stubCatalog struct {
	lines []model.ProductMaterial
	err   error
	calls int
}

func (c *stubCatalog) FindBOMLinesForProducts(_ context.Context, ids []uuid.UUID) ([]model.ProductMaterial, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []model.ProductMaterial
	for _, l := range c.lines {
		if wanted[l.ProductID] {
			out = append(out, l)
		}
	}
	return out, nil
}

var _ service.Catalog = (*stubCatalog)(nil)

func newMaterial(materialType, color string, unit model.MeasurementUnit) *model.Material {
	return &model.Material{
		ID:          uuid.New(),
		Type:        materialType,
		Color:       color,
		ColorCode:   "#000000",
		Brand:       "Testbrand",
		DefaultUnit: unit,
		Currency:    "EUR",
	}
}

func bomLine(productID uuid.UUID, m *model.Material, qty string, unit model.MeasurementUnit) model.ProductMaterial {
	return model.ProductMaterial{
		ID:         uuid.New(),
		ProductID:  productID,
		MaterialID: m.ID,
		Material:   m,
		Quantity:   decimal.RequireFromString(qty),
		Unit:       unit,
	}
}

func entry(productID uuid.UUID, qty string) dto.RequirementEntry {
	return dto.RequirementEntry{ProductID: productID.String(), Quantity: decimal.RequireFromString(qty)}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestComputeRequirements_SingleProduct(t *testing.T) {
	productID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)
	thread := newMaterial("Thread", "White", model.UnitGram)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(productID, silk, "2.5", model.UnitMeter),
		bomLine(productID, thread, "40", model.UnitGram),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(productID, "100")},
	})
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, silk.ID.String(), result[0].Material.ID)
	assert.Equal(t, "250", result[0].TotalQuantity.String())
	assert.Equal(t, "METER", result[0].Unit)
	assert.False(t, result[0].UnitConflict)

	assert.Equal(t, thread.ID.String(), result[1].Material.ID)
	assert.Equal(t, "4000", result[1].TotalQuantity.String())
	assert.Equal(t, "GRAM", result[1].Unit)

	assert.Equal(t, 1, catalog.calls)
}

func TestComputeRequirements_SharedMaterialAcrossProducts(t *testing.T) {
	dressID := uuid.New()
	blouseID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(dressID, silk, "3", model.UnitMeter),
		bomLine(blouseID, silk, "1.5", model.UnitMeter),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			entry(dressID, "10"),
			entry(blouseID, "20"),
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	// 3×10 + 1.5×20 = 60
	assert.Equal(t, "60", result[0].TotalQuantity.String())
	assert.Equal(t, 1, catalog.calls)
}

func TestComputeRequirements_RepeatedPairLinesSumIndependently(t *testing.T) {
	productID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)

	// Two separate BOM lines for the same (product, material) pair, e.g. body
	// panels and lining cut from the same fabric.
	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(productID, silk, "1", model.UnitMeter),
		bomLine(productID, silk, "2", model.UnitMeter),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(productID, "10")},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	// 1×10 + 2×10 = 30, each line contributing on its own
	assert.Equal(t, "30", result[0].TotalQuantity.String())
	assert.False(t, result[0].UnitConflict)
}

func TestComputeRequirements_DuplicateEntriesAccumulate(t *testing.T) {
	productID := uuid.New()
	wool := newMaterial("Wool", "Charcoal", model.UnitKilogram)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(productID, wool, "0.8", model.UnitKilogram),
	}}
	svc := service.NewPlannerService(catalog)

	split, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			entry(productID, "100"),
			entry(productID, "50"),
		},
	})
	require.NoError(t, err)

	merged, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(productID, "150")},
	})
	require.NoError(t, err)

	require.Len(t, split, 1)
	require.Len(t, merged, 1)
	assert.True(t, split[0].TotalQuantity.Equal(merged[0].TotalQuantity),
		"split plan %s should equal merged plan %s", split[0].TotalQuantity, merged[0].TotalQuantity)
}

func TestComputeRequirements_ZeroQuantityContributesNothing(t *testing.T) {
	productID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(productID, silk, "2", model.UnitMeter),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(productID, "0")},
	})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 0, catalog.calls, "all-zero plan should not hit the catalog")
}

func TestComputeRequirements_EmptyPlan(t *testing.T) {
	svc := service.NewPlannerService(&stubCatalog{})

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestComputeRequirements_UnknownProductIgnored(t *testing.T) {
	knownID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(knownID, silk, "2", model.UnitMeter),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			entry(knownID, "10"),
			entry(uuid.New(), "99"), // no BOM lines on file
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "20", result[0].TotalQuantity.String())
}

func TestComputeRequirements_NegativeQuantityRejected(t *testing.T) {
	svc := service.NewPlannerService(&stubCatalog{})

	_, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			entry(uuid.New(), "5"),
			entry(uuid.New(), "-1"),
		},
	})
	var invalid *service.InvalidRequirementInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)
}

func TestComputeRequirements_MalformedProductIDRejected(t *testing.T) {
	catalog := &stubCatalog{}
	svc := service.NewPlannerService(catalog)

	_, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			{ProductID: "not-a-uuid", Quantity: decimal.NewFromInt(1)},
		},
	})
	var invalid *service.InvalidRequirementInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Index)
	assert.Equal(t, 0, catalog.calls, "invalid input should fail before the lookup")
}

func TestComputeRequirements_CatalogFailure(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("connection refused")}
	svc := service.NewPlannerService(catalog)

	_, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(uuid.New(), "1")},
	})
	assert.ErrorIs(t, err, service.ErrRequirementComputation)
}

func TestComputeRequirements_UnitConflictFlagged(t *testing.T) {
	dressID := uuid.New()
	skirtID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(dressID, silk, "3", model.UnitMeter),
		bomLine(skirtID, silk, "2", model.UnitYard),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			entry(dressID, "1"),
			entry(skirtID, "1"),
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	// First-seen unit wins; raw sum 3 + 2 = 5 with the conflict surfaced.
	assert.Equal(t, "METER", result[0].Unit)
	assert.Equal(t, "5", result[0].TotalQuantity.String())
	assert.True(t, result[0].UnitConflict)
}

func TestComputeRequirements_ScalesLinearly(t *testing.T) {
	productID := uuid.New()
	silk := newMaterial("Silk", "Ivory", model.UnitMeter)
	thread := newMaterial("Thread", "White", model.UnitGram)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(productID, silk, "2.5", model.UnitMeter),
		bomLine(productID, thread, "40", model.UnitGram),
	}}
	svc := service.NewPlannerService(catalog)

	base, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(productID, "7")},
	})
	require.NoError(t, err)

	doubled, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{entry(productID, "14")},
	})
	require.NoError(t, err)

	require.Len(t, doubled, len(base))
	for i := range base {
		assert.True(t, base[i].TotalQuantity.Mul(decimal.NewFromInt(2)).Equal(doubled[i].TotalQuantity))
	}
}

func TestComputeRequirements_FirstSeenOrderPreserved(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()
	linen := newMaterial("Linen", "Natural", model.UnitMeter)
	buttons := newMaterial("Buttons", "Horn", model.UnitUnit)
	zipper := newMaterial("Zipper", "Black", model.UnitUnit)

	catalog := &stubCatalog{lines: []model.ProductMaterial{
		bomLine(firstID, linen, "2", model.UnitMeter),
		bomLine(firstID, buttons, "8", model.UnitUnit),
		bomLine(secondID, zipper, "1", model.UnitUnit),
		bomLine(secondID, linen, "1", model.UnitMeter),
	}}
	svc := service.NewPlannerService(catalog)

	result, err := svc.ComputeRequirements(context.Background(), dto.RequirementRequest{
		Products: []dto.RequirementEntry{
			entry(firstID, "1"),
			entry(secondID, "1"),
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, linen.ID.String(), result[0].Material.ID)
	assert.Equal(t, buttons.ID.String(), result[1].Material.ID)
	assert.Equal(t, zipper.ID.String(), result[2].Material.ID)
}
