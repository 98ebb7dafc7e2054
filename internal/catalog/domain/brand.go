package domain

import (
	"context"
	"errors"
	"time"
)

var ErrBrandNotFound = errors.New("brand not found")

// Brand is a sub-classification of a product, e.g. its manufacturer.
// Names are unique per product, ignoring case.
type Brand struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_brands_product_name"`
	ProductID uint      `json:"productId" gorm:"not null;index;uniqueIndex:idx_brands_product_name"`
	Product   *Product  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Brand) TableName() string {
	return "brands"
}

type BrandView struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	ProductID   uint      `json:"productId"`
	ProductName string    `json:"productName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BrandRepository defines the contract for brand data access
type BrandRepository interface {
	Create(ctx context.Context, brand *Brand) error
	FindByID(ctx context.Context, id uint) (*Brand, error)
	ExistsByName(ctx context.Context, productID uint, name string, excludeID uint) (bool, error)
	List(ctx context.Context, productID *uint) ([]BrandView, error)
	Update(ctx context.Context, brand *Brand) error
	Delete(ctx context.Context, id uint) error
	CountStockEntries(ctx context.Context, brandID uint) (int64, error)
}
