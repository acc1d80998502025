package model

import (
	"time"

	"github.com/google/uuid"
)

// Role controls what a user may do through the API.
type Role string

const (
	RoleAdmin             Role = "ADMIN"
	RoleUser              Role = "USER"
	RoleProductionManager Role = "PRODUCTION_MANAGER"
	RoleInventoryManager  Role = "INVENTORY_MANAGER"
)

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         *string
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(24);not null;default:'USER'"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
