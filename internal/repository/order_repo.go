package repository

import (
	"context"

	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the data access contract for material purchase orders.
type OrderRepository interface {
	Create(ctx context.Context, o *model.MaterialOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MaterialOrder, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*model.MaterialOrder, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.MaterialOrder, int64, error)
	Update(ctx context.Context, o *model.MaterialOrder) error
	// Delete removes the order and its items in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, statuses ...model.OrderStatus) (int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.MaterialOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MaterialOrder, error) {
	var o model.MaterialOrder
	err := r.db.WithContext(ctx).Preload("OrderItems.Material").First(&o, id).Error
	return &o, err
}

func (r *orderRepo) FindByOrderNumber(ctx context.Context, orderNumber string) (*model.MaterialOrder, error) {
	var o model.MaterialOrder
	err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&o).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.MaterialOrder, int64, error) {
	var orders []model.MaterialOrder
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MaterialOrder{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Supplier != "" {
		q = q.Where("supplier ILIKE ?", "%"+filter.Supplier+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("OrderItems.Material").
		Order("order_date DESC").Limit(filter.Limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.MaterialOrder) error {
	return r.db.WithContext(ctx).Omit("OrderItems").Save(o).Error
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.MaterialOrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MaterialOrder{}, id).Error
	})
}

func (r *orderRepo) CountByStatus(ctx context.Context, statuses ...model.OrderStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.MaterialOrder{}).
		Where("status IN ?", statuses).Count(&n).Error
	return n, err
}
