package service_test

import (
	"context"
	"testing"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMaterialRepoWithRefs wraps the material stub so reference counts can be
// forced per material.
type stubMaterialRepoWithRefs struct {
	*stubMaterialRepo
	bomRefs map[uuid.UUID]int64
	invRefs map[uuid.UUID]int64
}

func (r *stubMaterialRepoWithRefs) CountReferences(_ context.Context, id uuid.UUID) (int64, int64, error) {
	return r.bomRefs[id], r.invRefs[id], nil
}

func buildMaterialSvc() (service.MaterialService, *stubMaterialRepoWithRefs) {
	repo := &stubMaterialRepoWithRefs{
		stubMaterialRepo: newStubMaterialRepo(),
		bomRefs:          make(map[uuid.UUID]int64),
		invRefs:          make(map[uuid.UUID]int64),
	}
	return service.NewMaterialService(repo), repo
}

func TestCreateMaterial_MapsFields(t *testing.T) {
	svc, _ := buildMaterialSvc()

	resp, err := svc.Create(context.Background(), dto.CreateMaterialRequest{
		Type:               "Silk Charmeuse",
		Color:              "Ivory",
		ColorCode:          "#F8F4E3",
		Brand:              "Como Silk Mills",
		DefaultUnit:        "METER",
		DefaultCostPerUnit: decimal.RequireFromString("14.50"),
		Currency:           "EUR",
		Properties:         model.PropertyMap{"weight_gsm": {Value: "90"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Silk Charmeuse", resp.Type)
	assert.Equal(t, "METER", resp.DefaultUnit)
	assert.Equal(t, "14.5", resp.DefaultCostPerUnit.String())
	assert.Equal(t, "EUR", resp.Currency)
	assert.NotEmpty(t, resp.ID)
}

func TestUpdateMaterial_PartialPatch(t *testing.T) {
	svc, repo := buildMaterialSvc()
	m := seedMaterial(t, repo.stubMaterialRepo)

	newColor := "Midnight"
	resp, err := svc.Update(context.Background(), m.ID, dto.UpdateMaterialRequest{Color: &newColor})
	require.NoError(t, err)

	assert.Equal(t, "Midnight", resp.Color)
	assert.Equal(t, m.Type, resp.Type)
}

func TestDeleteMaterial_BlockedWhileReferenced(t *testing.T) {
	svc, repo := buildMaterialSvc()
	m := seedMaterial(t, repo.stubMaterialRepo)
	repo.bomRefs[m.ID] = 2

	err := svc.Delete(context.Background(), m.ID)
	assert.Error(t, err)
	assert.Contains(t, repo.materials, m.ID)

	repo.bomRefs[m.ID] = 0
	repo.invRefs[m.ID] = 1
	err = svc.Delete(context.Background(), m.ID)
	assert.Error(t, err)

	repo.invRefs[m.ID] = 0
	require.NoError(t, svc.Delete(context.Background(), m.ID))
	assert.NotContains(t, repo.materials, m.ID)
}

func TestDeleteMaterial_NotFound(t *testing.T) {
	svc, _ := buildMaterialSvc()

	err := svc.Delete(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestListMaterials_Paginates(t *testing.T) {
	svc, repo := buildMaterialSvc()
	for i := 0; i < 3; i++ {
		seedMaterial(t, repo.stubMaterialRepo)
	}

	resp, err := svc.List(context.Background(), dto.MaterialFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
}
