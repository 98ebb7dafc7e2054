package query

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/internal/stock/repository"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/config"
)

func TestCurrentStock_Report(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	admin := testutil.SuperAdmin(root.ID)
	hair := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	skin := testutil.CreateCatalog(t, db, root.ID, "Skin Care", "Lotion", "Nivea")

	testutil.StockIn(t, db, hair.Product.ID, hair.Brand.ID, 20, root.ID)
	testutil.StockIn(t, db, hair.Product.ID, hair.Brand.ID, 10, root.ID)
	testutil.StockOut(t, db, hair.Product.ID, hair.Brand.ID, 5, root.ID)
	testutil.StockIn(t, db, skin.Product.ID, skin.Brand.ID, 3, root.ID)

	h := NewCurrentStockHandler(repository.NewGormStockRepository(db), config.StockConfig{LowStockThreshold: 10})
	rows, err := h.Handle(context.Background(), CurrentStockQuery{Actor: admin})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	lotion, shampoo := rows[0], rows[1]
	assert.Equal(t, "Lotion", lotion.ProductName)
	assert.Equal(t, "Skin Care", lotion.ServiceName)
	assert.Equal(t, int64(3), lotion.CurrentStock)
	assert.True(t, lotion.LowStock)

	assert.Equal(t, "Shampoo", shampoo.ProductName)
	assert.Equal(t, int64(30), shampoo.TotalStockIn)
	assert.Equal(t, int64(5), shampoo.TotalStockOut)
	assert.Equal(t, int64(25), shampoo.CurrentStock)
	assert.False(t, shampoo.LowStock)

	only, err := h.Handle(context.Background(), CurrentStockQuery{Actor: admin, ProductID: &hair.Product.ID})
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, hair.Product.ID, only[0].ProductID)

	_, err = h.Handle(context.Background(), CurrentStockQuery{})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestCurrentStock_EmptyCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := NewCurrentStockHandler(repository.NewGormStockRepository(db), config.StockConfig{LowStockThreshold: 10})

	rows, err := h.Handle(context.Background(), CurrentStockQuery{Actor: testutil.SuperAdmin(1)})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestQuickStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	hair := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	testutil.CreateCatalog(t, db, root.ID, "Skin Care", "Lotion", "Nivea")

	testutil.StockIn(t, db, hair.Product.ID, hair.Brand.ID, 20, root.ID)
	testutil.StockIn(t, db, hair.Product.ID, hair.Brand.ID, 10, root.ID)
	testutil.StockOut(t, db, hair.Product.ID, hair.Brand.ID, 5, root.ID)

	h := NewQuickStatsHandler(repository.NewGormStockRepository(db), config.StockConfig{LowStockThreshold: 10})
	stats, err := h.Handle(context.Background(), QuickStatsQuery{Actor: testutil.SuperAdmin(root.ID)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalServices)
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.TotalStockInEntries)
	assert.Equal(t, int64(1), stats.TotalStockOutEntries)
	assert.Equal(t, int64(30), stats.TotalStockInQuantity)
	assert.Equal(t, int64(5), stats.TotalStockOutQuantity)
	assert.Equal(t, int64(25), stats.CurrentStock)
	assert.Equal(t, int64(1), stats.LowStockCount, "lotion has nothing in stock")
	assert.Equal(t, int64(10), stats.LowStockThreshold)
}

func TestAvailableStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	cat := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	other := testutil.AddBrand(t, db, cat.Product.ID, "Sunsilk")

	testutil.StockIn(t, db, cat.Product.ID, cat.Brand.ID, 20, root.ID)
	testutil.StockIn(t, db, cat.Product.ID, other.ID, 7, root.ID)
	testutil.StockOut(t, db, cat.Product.ID, cat.Brand.ID, 15, root.ID)
	testutil.StockOut(t, db, cat.Product.ID, other.ID, 9, root.ID)

	h := NewAvailableStockHandler(repository.NewGormStockRepository(db))
	ctx := context.Background()

	total, err := h.Handle(ctx, AvailableStockQuery{ProductID: &cat.Product.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	dove, err := h.Handle(ctx, AvailableStockQuery{ProductID: &cat.Product.ID, BrandID: &cat.Brand.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(5), dove)

	sunsilk, err := h.Handle(ctx, AvailableStockQuery{ProductID: &cat.Product.ID, BrandID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), sunsilk, "legacy overdraws are reported as they are")

	_, err = h.Handle(ctx, AvailableStockQuery{})
	assert.EqualError(t, err, "productId is required")
}

func TestListEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	cat := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	other := testutil.CreateCatalog(t, db, root.ID, "Skin Care", "Lotion", "Nivea")

	first := testutil.StockIn(t, db, cat.Product.ID, cat.Brand.ID, 4, root.ID)
	second := testutil.StockIn(t, db, cat.Product.ID, cat.Brand.ID, 6, root.ID)
	testutil.StockIn(t, db, other.Product.ID, other.Brand.ID, 1, root.ID)
	testutil.StockOut(t, db, cat.Product.ID, cat.Brand.ID, 2, root.ID)

	repo := repository.NewGormStockRepository(db)
	admin := testutil.SuperAdmin(root.ID)
	ctx := context.Background()

	ins, err := NewListStockInHandler(repo).Handle(ctx, ListEntriesQuery{
		Actor:  admin,
		Filter: domain.EntryFilter{ProductID: &cat.Product.ID},
	})
	require.NoError(t, err)
	require.Len(t, ins, 2)
	ids := []uint{ins[0].ID, ins[1].ID}
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, ids)
	for _, e := range ins {
		assert.Equal(t, "Shampoo", e.ProductName)
		assert.Equal(t, "Dove", e.BrandName)
		assert.Equal(t, "root", e.CreatedByName)
		assert.True(t, e.TotalPrice.Equal(decimal.NewFromInt(5*e.Quantity)))
	}

	outs, err := NewListStockOutHandler(repo).Handle(ctx, ListEntriesQuery{
		Actor:  admin,
		Filter: domain.EntryFilter{BrandID: &other.Brand.ID},
	})
	require.NoError(t, err)
	assert.NotNil(t, outs)
	assert.Empty(t, outs)

	_, err = NewListStockOutHandler(repo).Handle(ctx, ListEntriesQuery{})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}
