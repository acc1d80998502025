package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products  map[uuid.UUID]*model.Product
	bomLines  map[uuid.UUID]*model.ProductMaterial
	movements map[uuid.UUID]int64
	materials *stubMaterialRepo // for preloading Material on BOM lines
}

func newStubProductRepo(materials *stubMaterialRepo) *stubProductRepo {
	return &stubProductRepo{
		products:  make(map[uuid.UUID]*model.Product),
		bomLines:  make(map[uuid.UUID]*model.ProductMaterial),
		movements: make(map[uuid.UUID]int64),
		materials: materials,
	}
}

func (r *stubProductRepo) hydrate(line model.ProductMaterial) model.ProductMaterial {
	if m, ok := r.materials.materials[line.MaterialID]; ok {
		line.Material = m
	}
	return line
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = uuid.New()
	for i := range p.Materials {
		p.Materials[i].ID = uuid.New()
		p.Materials[i].ProductID = p.ID
		line := p.Materials[i]
		r.bomLines[line.ID] = &line
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *stubProductRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := *p
	detail.Materials = nil
	for _, line := range r.bomLines {
		if line.ProductID == id {
			detail.Materials = append(detail.Materials, r.hydrate(*line))
		}
	}
	return &detail, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) CountInventoryMovements(_ context.Context, id uuid.UUID) (int64, error) {
	return r.movements[id], nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) AddBOMLine(_ context.Context, line *model.ProductMaterial) error {
	line.ID = uuid.New()
	r.bomLines[line.ID] = line
	return nil
}

func (r *stubProductRepo) FindBOMLine(_ context.Context, id uuid.UUID) (*model.ProductMaterial, error) {
	line, ok := r.bomLines[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	hydrated := r.hydrate(*line)
	return &hydrated, nil
}

func (r *stubProductRepo) UpdateBOMLine(_ context.Context, line *model.ProductMaterial) error {
	r.bomLines[line.ID] = line
	return nil
}

func (r *stubProductRepo) RemoveBOMLine(_ context.Context, id uuid.UUID) error {
	delete(r.bomLines, id)
	return nil
}

func (r *stubProductRepo) FindBOMLinesForProducts(_ context.Context, ids []uuid.UUID) ([]model.ProductMaterial, error) {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []model.ProductMaterial
	for _, line := range r.bomLines {
		if wanted[line.ProductID] {
			out = append(out, r.hydrate(*line))
		}
	}
	return out, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func buildProductSvc() (service.ProductService, *stubProductRepo, *stubMaterialRepo) {
	materialRepo := newStubMaterialRepo()
	productRepo := newStubProductRepo(materialRepo)
	svc := service.NewProductService(productRepo, materialRepo)
	return svc, productRepo, materialRepo
}

func productRequest(sku string, materials ...dto.BOMLineInput) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:       sku,
		Piece:     "DRESS",
		Name:      "Wrap Dress",
		Season:    "SS26",
		Phase:     string(model.PhaseSwatch),
		Materials: materials,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCreateProduct_WithBOM(t *testing.T) {
	svc, _, materialRepo := buildProductSvc()
	silk := seedMaterial(t, materialRepo)

	resp, err := svc.Create(context.Background(), productRequest("SS26-DRS-001",
		dto.BOMLineInput{
			MaterialID: silk.ID.String(),
			Quantity:   decimal.RequireFromString("2.5"),
			Unit:       "METER",
		},
	))
	require.NoError(t, err)

	assert.Equal(t, "SS26-DRS-001", resp.SKU)
	require.Len(t, resp.Materials, 1)
	assert.Equal(t, silk.ID.String(), resp.Materials[0].Material.ID)
	assert.Equal(t, "2.5", resp.Materials[0].Quantity.String())
	assert.NotNil(t, resp.Photos)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	svc, _, _ := buildProductSvc()

	_, err := svc.Create(context.Background(), productRequest("SS26-DRS-002"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), productRequest("SS26-DRS-002"))
	assert.ErrorIs(t, err, service.ErrDuplicateSKU)
}

func TestCreateProduct_UnknownMaterialInBOM(t *testing.T) {
	svc, _, _ := buildProductSvc()

	_, err := svc.Create(context.Background(), productRequest("SS26-DRS-003",
		dto.BOMLineInput{
			MaterialID: uuid.NewString(),
			Quantity:   decimal.NewFromInt(1),
			Unit:       "METER",
		},
	))
	assert.Error(t, err)
}

func TestDeleteProduct_BlockedByMovements(t *testing.T) {
	svc, productRepo, _ := buildProductSvc()

	created, err := svc.Create(context.Background(), productRequest("SS26-DRS-004"))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)
	productRepo.movements[id] = 3

	err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, service.ErrProductHasMoves)
	assert.Contains(t, productRepo.products, id)
}

func TestAddBOMLine_ThenUpdateAndRemove(t *testing.T) {
	svc, productRepo, materialRepo := buildProductSvc()
	wool := seedMaterial(t, materialRepo)

	created, err := svc.Create(context.Background(), productRequest("FW26-CTO-001"))
	require.NoError(t, err)
	productID := uuid.MustParse(created.ID)

	line, err := svc.AddBOMLine(context.Background(), productID, dto.BOMLineInput{
		MaterialID: wool.ID.String(),
		Quantity:   decimal.RequireFromString("1.8"),
		Unit:       "METER",
	})
	require.NoError(t, err)
	lineID := uuid.MustParse(line.ID)

	newQty := decimal.RequireFromString("2.2")
	updated, err := svc.UpdateBOMLine(context.Background(), productID, lineID, dto.UpdateBOMLineRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, "2.2", updated.Quantity.String())

	require.NoError(t, svc.RemoveBOMLine(context.Background(), productID, lineID))
	assert.NotContains(t, productRepo.bomLines, lineID)
}

func TestBOMLine_NonPositiveQuantityRejected(t *testing.T) {
	svc, _, materialRepo := buildProductSvc()
	silk := seedMaterial(t, materialRepo)

	// Create with a negative-quantity line
	_, err := svc.Create(context.Background(), productRequest("SS26-DRS-009",
		dto.BOMLineInput{
			MaterialID: silk.ID.String(),
			Quantity:   decimal.RequireFromString("-5"),
			Unit:       "METER",
		},
	))
	assert.ErrorIs(t, err, service.ErrBOMQtyNotPos)

	created, err := svc.Create(context.Background(), productRequest("SS26-DRS-009"))
	require.NoError(t, err)
	productID := uuid.MustParse(created.ID)

	// Add a line with zero then negative quantity
	for _, qty := range []string{"0", "-5"} {
		_, err = svc.AddBOMLine(context.Background(), productID, dto.BOMLineInput{
			MaterialID: silk.ID.String(),
			Quantity:   decimal.RequireFromString(qty),
			Unit:       "METER",
		})
		assert.ErrorIs(t, err, service.ErrBOMQtyNotPos)
	}

	// Patch an existing line down to a negative quantity
	line, err := svc.AddBOMLine(context.Background(), productID, dto.BOMLineInput{
		MaterialID: silk.ID.String(),
		Quantity:   decimal.RequireFromString("2"),
		Unit:       "METER",
	})
	require.NoError(t, err)

	bad := decimal.RequireFromString("-1")
	_, err = svc.UpdateBOMLine(context.Background(), productID, uuid.MustParse(line.ID), dto.UpdateBOMLineRequest{Quantity: &bad})
	assert.ErrorIs(t, err, service.ErrBOMQtyNotPos)

	kept, err := svc.GetByID(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, kept.Materials, 1)
	assert.Equal(t, "2", kept.Materials[0].Quantity.String())
}

func TestUpdateBOMLine_WrongProductRejected(t *testing.T) {
	svc, _, materialRepo := buildProductSvc()
	wool := seedMaterial(t, materialRepo)

	created, err := svc.Create(context.Background(), productRequest("FW26-CTO-002"))
	require.NoError(t, err)
	productID := uuid.MustParse(created.ID)

	line, err := svc.AddBOMLine(context.Background(), productID, dto.BOMLineInput{
		MaterialID: wool.ID.String(),
		Quantity:   decimal.NewFromInt(1),
		Unit:       "METER",
	})
	require.NoError(t, err)

	qty := decimal.NewFromInt(5)
	_, err = svc.UpdateBOMLine(context.Background(), uuid.New(), uuid.MustParse(line.ID), dto.UpdateBOMLineRequest{Quantity: &qty})
	assert.ErrorIs(t, err, service.ErrBOMLineMismatch)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc, _, _ := buildProductSvc()

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}
