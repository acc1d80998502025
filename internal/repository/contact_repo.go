package repository

import (
	"context"

	"github.com/nmacchitella/fashion-inventory/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactRepository defines the data access contract for address-book entries.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	FindByEmail(ctx context.Context, email string) (*model.Contact, error)
	List(ctx context.Context, contactType string) ([]model.Contact, error)
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) ContactRepository { return &contactRepo{db: db} }

func (r *contactRepo) Create(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	var c model.Contact
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *contactRepo) FindByEmail(ctx context.Context, email string) (*model.Contact, error) {
	var c model.Contact
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return &c, err
}

func (r *contactRepo) List(ctx context.Context, contactType string) ([]model.Contact, error) {
	var contacts []model.Contact
	q := r.db.WithContext(ctx)
	if contactType != "" {
		q = q.Where("type = ?", contactType)
	}
	err := q.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) Update(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Contact{}, id).Error
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).Count(&n).Error
	return n, err
}
