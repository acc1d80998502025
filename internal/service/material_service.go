package service

import (
	"context"
	"errors"
	"math"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/google/uuid"
)

// MaterialService defines the business logic contract for materials.
type MaterialService interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MaterialDetailResponse, error)
	List(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type materialService struct {
	repo repository.MaterialRepository
}

func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func (s *materialService) Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	m := &model.Material{
		Type:               req.Type,
		Color:              req.Color,
		ColorCode:          req.ColorCode,
		Brand:              req.Brand,
		DefaultUnit:        model.MeasurementUnit(req.DefaultUnit),
		DefaultCostPerUnit: req.DefaultCostPerUnit,
		Currency:           req.Currency,
		Properties:         req.Properties,
		Notes:              req.Notes,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := materialToResponse(m)
	return &resp, nil
}

func (s *materialService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MaterialDetailResponse, error) {
	m, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		return nil, errors.New("material not found")
	}

	detail := &dto.MaterialDetailResponse{
		MaterialResponse: materialToResponse(m),
		UsedBy:           make([]dto.MaterialUsage, 0, len(m.Products)),
		Inventory:        make([]dto.InventoryResponse, 0, len(m.Inventory)),
	}
	for _, line := range m.Products {
		usage := dto.MaterialUsage{
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			Unit:      string(line.Unit),
		}
		if line.Product != nil {
			usage.ProductName = line.Product.Name
			usage.SKU = line.Product.SKU
		}
		detail.UsedBy = append(detail.UsedBy, usage)
	}
	for _, inv := range m.Inventory {
		detail.Inventory = append(detail.Inventory, inventoryToResponse(&inv))
	}
	return detail, nil
}

func (s *materialService) List(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	materials, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.MaterialListResponse{
		Data:       make([]dto.MaterialResponse, len(materials)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}
	for i := range materials {
		resp.Data[i] = materialToResponse(&materials[i])
	}
	return resp, nil
}

func (s *materialService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("material not found")
	}

	if req.Type != nil {
		m.Type = *req.Type
	}
	if req.Color != nil {
		m.Color = *req.Color
	}
	if req.ColorCode != nil {
		m.ColorCode = *req.ColorCode
	}
	if req.Brand != nil {
		m.Brand = *req.Brand
	}
	if req.DefaultUnit != nil {
		m.DefaultUnit = model.MeasurementUnit(*req.DefaultUnit)
	}
	if req.DefaultCostPerUnit != nil {
		m.DefaultCostPerUnit = *req.DefaultCostPerUnit
	}
	if req.Currency != nil {
		m.Currency = *req.Currency
	}
	if req.Properties != nil {
		m.Properties = req.Properties
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := materialToResponse(m)
	return &resp, nil
}

// Delete refuses to remove a material that is still referenced by a product's
// bill of materials or by inventory.
func (s *materialService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("material not found")
	}
	bomLines, inventory, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if bomLines > 0 {
		return errors.New("cannot delete material that is in use by products")
	}
	if inventory > 0 {
		return errors.New("cannot delete material with existing inventory")
	}
	return s.repo.Delete(ctx, id)
}

func materialToResponse(m *model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:                 m.ID.String(),
		Type:               m.Type,
		Color:              m.Color,
		ColorCode:          m.ColorCode,
		Brand:              m.Brand,
		DefaultUnit:        string(m.DefaultUnit),
		DefaultCostPerUnit: m.DefaultCostPerUnit,
		Currency:           m.Currency,
		Properties:         m.Properties,
		Notes:              m.Notes,
	}
}

func inventoryToResponse(inv *model.Inventory) dto.InventoryResponse {
	resp := dto.InventoryResponse{
		ID:       inv.ID.String(),
		Type:     string(inv.Type),
		Quantity: inv.Quantity,
		Unit:     string(inv.Unit),
		Location: inv.Location,
	}
	if inv.MaterialID != nil {
		id := inv.MaterialID.String()
		resp.MaterialID = &id
	}
	if inv.ProductID != nil {
		id := inv.ProductID.String()
		resp.ProductID = &id
	}
	return resp
}
