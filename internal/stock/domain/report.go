package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockInView struct {
	ID            uint            `json:"id"`
	ProductID     uint            `json:"productId"`
	ProductName   string          `json:"productName"`
	BrandID       uint            `json:"brandId"`
	BrandName     string          `json:"brandName"`
	Quantity      int64           `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	TotalPrice    decimal.Decimal `json:"totalPrice" gorm:"-"`
	Comments      string          `json:"comments"`
	CreatedByID   uint            `json:"createdById"`
	CreatedByName string          `json:"createdByName"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type StockOutView struct {
	ID            uint      `json:"id"`
	ProductID     uint      `json:"productId"`
	ProductName   string    `json:"productName"`
	BrandID       uint      `json:"brandId"`
	BrandName     string    `json:"brandName"`
	Quantity      int64     `json:"quantity"`
	Comments      string    `json:"comments"`
	CreatedByID   uint      `json:"createdById"`
	CreatedByName string    `json:"createdByName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductStock is one row of the current stock report
type ProductStock struct {
	ProductID     uint   `json:"productId"`
	ProductName   string `json:"productName"`
	ServiceID     uint   `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	TotalStockIn  int64  `json:"totalStockIn"`
	TotalStockOut int64  `json:"totalStockOut"`
	CurrentStock  int64  `json:"currentStock" gorm:"-"`
	LowStock      bool   `json:"lowStock" gorm:"-"`
}

// QuickStats summarises the whole inventory
type QuickStats struct {
	TotalServices         int64 `json:"totalServices"`
	TotalProducts         int64 `json:"totalProducts"`
	TotalStockInEntries   int64 `json:"totalStockInEntries"`
	TotalStockOutEntries  int64 `json:"totalStockOutEntries"`
	TotalStockInQuantity  int64 `json:"totalStockInQuantity"`
	TotalStockOutQuantity int64 `json:"totalStockOutQuantity"`
	CurrentStock          int64 `json:"currentStock"`
	LowStockCount         int64 `json:"lowStockCount"`
	LowStockThreshold     int64 `json:"lowStockThreshold"`
}
