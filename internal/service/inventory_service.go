package service

import (
	"context"
	"errors"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"

	"github.com/google/uuid"
)

var ErrInventoryNotFound = errors.New("inventory entry not found")

// InventoryService exposes stock levels and signed-delta adjustments.
// Every adjustment leaves an ADJUSTED movement behind; quantities are
// never overwritten in place.
type InventoryService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]dto.InventoryResponse, error)
	Adjust(ctx context.Context, id uuid.UUID, req dto.AdjustInventoryRequest) (*dto.InventoryResponse, error)
	ListMovements(ctx context.Context, inventoryID uuid.UUID) ([]dto.MovementResponse, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}
	resp := inventoryToResponse(inv)
	return &resp, nil
}

func (s *inventoryService) List(ctx context.Context, filter dto.InventoryFilter) ([]dto.InventoryResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InventoryResponse, len(rows))
	for i := range rows {
		resp[i] = inventoryToResponse(&rows[i])
	}
	return resp, nil
}

func (s *inventoryService) Adjust(ctx context.Context, id uuid.UUID, req dto.AdjustInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}
	if req.Delta.IsNegative() && inv.Quantity.Add(req.Delta).IsNegative() {
		return nil, errors.New("adjustment would drive quantity below zero")
	}

	mov := &model.InventoryMovement{
		InventoryID: id,
		Type:        model.MovementAdjusted,
		Quantity:    req.Delta,
		Unit:        inv.Unit,
		Notes:       &req.Reason,
	}
	if err := s.repo.Adjust(ctx, id, req.Delta, mov); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := inventoryToResponse(updated)
	return &resp, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, inventoryID uuid.UUID) ([]dto.MovementResponse, error) {
	if _, err := s.repo.FindByID(ctx, inventoryID); err != nil {
		return nil, ErrInventoryNotFound
	}
	movements, err := s.repo.ListMovements(ctx, inventoryID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovementResponse, len(movements))
	for i, m := range movements {
		resp[i] = dto.MovementResponse{
			ID:        m.ID.String(),
			Type:      string(m.Type),
			Quantity:  m.Quantity,
			Unit:      string(m.Unit),
			Reference: m.Reference,
			CreatedAt: m.CreatedAt,
		}
	}
	return resp, nil
}
