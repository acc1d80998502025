package repository

import (
	"context"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryRepository defines the data access contract for inventory rows and
// their movement history.
type InventoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]model.Inventory, error)
	// Adjust applies a signed delta to the row's quantity and records the
	// movement, atomically.
	Adjust(ctx context.Context, id uuid.UUID, delta decimal.Decimal, mov *model.InventoryMovement) error
	ListMovements(ctx context.Context, inventoryID uuid.UUID) ([]model.InventoryMovement, error)
	// FindMaterialStockBelow returns material inventory rows whose quantity is
	// under the threshold, material preloaded. Used by the low-stock scan.
	FindMaterialStockBelow(ctx context.Context, threshold decimal.Decimal) ([]model.Inventory, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).Preload("Material").Preload("Product").First(&inv, id).Error
	return &inv, err
}

func (r *inventoryRepo) List(ctx context.Context, filter dto.InventoryFilter) ([]model.Inventory, error) {
	var rows []model.Inventory

	q := r.db.WithContext(ctx).Preload("Material").Preload("Product")

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MaterialID != "" {
		q = q.Where("material_id = ?", filter.MaterialID)
	}
	if filter.ProductID != "" {
		q = q.Where("product_id = ?", filter.ProductID)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}

	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *inventoryRepo) Adjust(ctx context.Context, id uuid.UUID, delta decimal.Decimal, mov *model.InventoryMovement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Inventory{}).Where("id = ?", id).
			Update("quantity", gorm.Expr("quantity + ?", delta)).Error; err != nil {
			return err
		}
		mov.InventoryID = id
		return tx.Create(mov).Error
	})
}

func (r *inventoryRepo) ListMovements(ctx context.Context, inventoryID uuid.UUID) ([]model.InventoryMovement, error) {
	var movs []model.InventoryMovement
	err := r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Order("created_at DESC").
		Find(&movs).Error
	return movs, err
}

func (r *inventoryRepo) FindMaterialStockBelow(ctx context.Context, threshold decimal.Decimal) ([]model.Inventory, error) {
	var rows []model.Inventory
	err := r.db.WithContext(ctx).Preload("Material").
		Where("type = ? AND quantity < ?", model.InventoryMaterial, threshold).
		Find(&rows).Error
	return rows, err
}
