package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/tair/inventory-tracker/internal/catalog/domain"
)

var (
	ErrStockInNotFound  = errors.New("stock in entry not found")
	ErrStockOutNotFound = errors.New("stock out entry not found")
)

// StockIn records units received for a product brand
type StockIn struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	ProductID    uint             `json:"productId" gorm:"not null;index"`
	Product      *catalog.Product `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	BrandID      uint             `json:"brandId" gorm:"not null;index"`
	Brand        *catalog.Brand   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity     int64            `json:"quantity" gorm:"not null"`
	PricePerUnit decimal.Decimal  `json:"pricePerUnit" gorm:"type:decimal(12,2);not null"`
	Comments     string           `json:"comments"`
	CreatedByID  uint             `json:"createdById" gorm:"not null;index"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// TableName specifies the table name
func (StockIn) TableName() string {
	return "stock_ins"
}

func (s StockIn) Scope() Scope {
	return BrandScope(s.ProductID, s.BrandID)
}

// StockOut records units sold or used
type StockOut struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	ProductID   uint             `json:"productId" gorm:"not null;index"`
	Product     *catalog.Product `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	BrandID     uint             `json:"brandId" gorm:"not null;index"`
	Brand       *catalog.Brand   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity    int64            `json:"quantity" gorm:"not null"`
	Comments    string           `json:"comments"`
	CreatedByID uint             `json:"createdById" gorm:"not null;index"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// TableName specifies the table name
func (StockOut) TableName() string {
	return "stock_outs"
}

func (s StockOut) Scope() Scope {
	return BrandScope(s.ProductID, s.BrandID)
}

// EntryFilter narrows a ledger listing
type EntryFilter struct {
	ProductID *uint
	BrandID   *uint
}
