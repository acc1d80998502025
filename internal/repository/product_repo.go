package repository

import (
	"context"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products and their
// bill-of-materials lines.
type ProductRepository interface {
	// Create persists the product together with any BOM lines and initial
	// inventory rows in a single transaction.
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindDetailByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	// Delete cascades BOM lines and inventory rows inside a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	// CountInventoryMovements reports movements on any of the product's
	// inventory rows; deletion is blocked while nonzero.
	CountInventoryMovements(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)

	// BOM line management
	AddBOMLine(ctx context.Context, line *model.ProductMaterial) error
	FindBOMLine(ctx context.Context, id uuid.UUID) (*model.ProductMaterial, error)
	UpdateBOMLine(ctx context.Context, line *model.ProductMaterial) error
	RemoveBOMLine(ctx context.Context, id uuid.UUID) error

	// FindBOMLinesForProducts resolves every BOM line whose product is in ids,
	// material record included, in one batched query. This is the catalog
	// lookup behind the requirements planner.
	FindBOMLinesForProducts(ctx context.Context, ids []uuid.UUID) ([]model.ProductMaterial, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	// Associations on the struct (Materials, Inventory) ride along in the
	// same insert; GORM wraps it in a transaction.
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Materials.Material").
		Preload("Inventory.Movements").
		First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.SKU != "" {
		q = q.Where("sku = ?", filter.SKU)
	}
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Season != "" {
		q = q.Where("season = ?", filter.Season)
	}
	if filter.Phase != "" {
		q = q.Where("phase = ?", filter.Phase)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Movements hang off inventory rows; remove them first.
		if err := tx.Where("inventory_id IN (?)",
			tx.Model(&model.Inventory{}).Select("id").Where("product_id = ?", id),
		).Delete(&model.InventoryMovement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Inventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
}

func (r *productRepo) CountInventoryMovements(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.InventoryMovement{}).
		Where("inventory_id IN (?)",
			r.db.Model(&model.Inventory{}).Select("id").Where("product_id = ?", id),
		).Count(&n).Error
	return n, err
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) AddBOMLine(ctx context.Context, line *model.ProductMaterial) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *productRepo) FindBOMLine(ctx context.Context, id uuid.UUID) (*model.ProductMaterial, error) {
	var line model.ProductMaterial
	err := r.db.WithContext(ctx).Preload("Material").First(&line, id).Error
	return &line, err
}

func (r *productRepo) UpdateBOMLine(ctx context.Context, line *model.ProductMaterial) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *productRepo) RemoveBOMLine(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductMaterial{}, id).Error
}

func (r *productRepo) FindBOMLinesForProducts(ctx context.Context, ids []uuid.UUID) ([]model.ProductMaterial, error) {
	var lines []model.ProductMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("product_id IN ?", ids).
		Find(&lines).Error
	return lines, err
}
