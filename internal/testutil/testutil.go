// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/inventory-tracker/internal/access"
	catalog "github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/internal/schema"
	stock "github.com/tair/inventory-tracker/internal/stock/domain"
	user "github.com/tair/inventory-tracker/internal/user/domain"
)

// NewTestDB opens a migrated in-memory SQLite database. A single connection
// keeps every query on the same memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, schema.Migrate(db))
	return db
}

// SuperAdmin returns an identity allowed to do anything
func SuperAdmin(userID uint) *access.Identity {
	return &access.Identity{
		UserID:      userID,
		Username:    "root",
		Role:        access.RoleSuperAdmin,
		Permissions: access.FullPermissions(),
	}
}

// NormalAdmin returns a NORMAL_ADMIN identity holding perms
func NormalAdmin(userID uint, perms access.PermissionSet) *access.Identity {
	return &access.Identity{
		UserID:      userID,
		Username:    "clerk",
		Role:        access.RoleNormalAdmin,
		Permissions: perms,
	}
}

// CreateUser inserts an active user row
func CreateUser(t *testing.T, db *gorm.DB, username string, role access.Role) *user.User {
	t.Helper()
	u := &user.User{
		EmployeeID:   "EMP-" + username,
		Username:     username,
		Email:        username + "@example.com",
		Password:     "not-a-hash",
		JobStartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
		Role:         role,
		Permissions:  datatypes.NewJSONType(access.PermissionSet{}),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Catalog holds one service, product and brand
type Catalog struct {
	Service *catalog.Service
	Product *catalog.Product
	Brand   *catalog.Brand
}

// CreateCatalog inserts a service, a product under it and a brand of the product
func CreateCatalog(t *testing.T, db *gorm.DB, createdBy uint, service, product, brand string) Catalog {
	t.Helper()
	s := &catalog.Service{Name: service, ServiceCharge: decimal.NewFromInt(10), CreatedByID: createdBy}
	require.NoError(t, db.Create(s).Error)
	p := &catalog.Product{Name: product, ServiceID: s.ID, CreatedByID: createdBy}
	require.NoError(t, db.Omit("Service").Create(p).Error)
	b := &catalog.Brand{Name: brand, ProductID: p.ID}
	require.NoError(t, db.Omit("Product").Create(b).Error)
	return Catalog{Service: s, Product: p, Brand: b}
}

// AddBrand inserts another brand for productID
func AddBrand(t *testing.T, db *gorm.DB, productID uint, name string) *catalog.Brand {
	t.Helper()
	b := &catalog.Brand{Name: name, ProductID: productID}
	require.NoError(t, db.Omit("Product").Create(b).Error)
	return b
}

// StockIn inserts a stock in row directly
func StockIn(t *testing.T, db *gorm.DB, productID, brandID uint, quantity int64, createdBy uint) *stock.StockIn {
	t.Helper()
	e := &stock.StockIn{
		ProductID:    productID,
		BrandID:      brandID,
		Quantity:     quantity,
		PricePerUnit: decimal.NewFromInt(5),
		CreatedByID:  createdBy,
	}
	require.NoError(t, db.Omit("Product", "Brand").Create(e).Error)
	return e
}

// StockOut inserts a stock out row directly, bypassing the availability check
func StockOut(t *testing.T, db *gorm.DB, productID, brandID uint, quantity int64, createdBy uint) *stock.StockOut {
	t.Helper()
	e := &stock.StockOut{ProductID: productID, BrandID: brandID, Quantity: quantity, CreatedByID: createdBy}
	require.NoError(t, db.Omit("Product", "Brand").Create(e).Error)
	return e
}
