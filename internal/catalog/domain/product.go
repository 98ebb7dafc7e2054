package domain

import (
	"context"
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product represents a sellable or usable item belonging to a service
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;uniqueIndex;not null"`
	Description string    `json:"description"`
	ServiceID   uint      `json:"serviceId" gorm:"not null;index"`
	Service     *Service  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedByID uint      `json:"createdById" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductView is a product row with its service and creator names
type ProductView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ServiceID     uint      `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	BrandCount    int64     `json:"brandCount"`
	CreatedByID   uint      `json:"createdById"`
	CreatedByName string    `json:"createdByName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductFilter narrows a product listing
type ProductFilter struct {
	ServiceID *uint
	ID        *uint
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ProductFilter) ([]ProductView, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
	CountDependents(ctx context.Context, productID uint) (int64, error)
}
