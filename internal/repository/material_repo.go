package repository

import (
	"context"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaterialRepository defines the data access contract for materials.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	// FindDetailByID loads the material together with its BOM usage and
	// inventory (movements included).
	FindDetailByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	List(ctx context.Context, filter dto.MaterialFilter) ([]model.Material, int64, error)
	Update(ctx context.Context, m *model.Material) error
	// CountReferences returns how many BOM lines and inventory rows point at
	// the material. Deletion is blocked while either is nonzero.
	CountReferences(ctx context.Context, id uuid.UUID) (bomLines int64, inventory int64, err error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).
		Preload("Products.Product").
		Preload("Inventory.Movements").
		First(&m, id).Error
	return &m, err
}

func (r *materialRepo) List(ctx context.Context, filter dto.MaterialFilter) ([]model.Material, int64, error) {
	var materials []model.Material
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Material{})

	if filter.Type != "" {
		q = q.Where("type ILIKE ?", "%"+filter.Type+"%")
	}
	if filter.Color != "" {
		q = q.Where("color ILIKE ?", "%"+filter.Color+"%")
	}
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("type ASC, color ASC").Limit(filter.Limit).Offset(offset).Find(&materials).Error
	return materials, total, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, int64, error) {
	var bomLines, inventory int64
	if err := r.db.WithContext(ctx).Model(&model.ProductMaterial{}).
		Where("material_id = ?", id).Count(&bomLines).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Inventory{}).
		Where("material_id = ?", id).Count(&inventory).Error; err != nil {
		return 0, 0, err
	}
	return bomLines, inventory, nil
}

// Delete removes the material and any leftover rows pointing at it, in one
// transaction. Callers must check CountReferences first.
func (r *materialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("material_id = ?", id).Delete(&model.Inventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("material_id = ?", id).Delete(&model.ProductMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Material{}, id).Error
	})
}

func (r *materialRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Material{}).Count(&n).Error
	return n, err
}
