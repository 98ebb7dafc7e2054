package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/repository"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

func TestListServices(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	testutil.CreateCatalog(t, db, root.ID, "Skin Care", "Lotion", "Nivea")
	testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")

	h := NewListServicesHandler(repository.NewGormServiceRepository(db))
	views, err := h.Handle(context.Background(), ListServicesQuery{Actor: testutil.SuperAdmin(root.ID)})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Hair Care", views[0].Name)
	assert.Equal(t, "root", views[0].CreatedByName)
	assert.Equal(t, int64(1), views[0].ProductCount)
	assert.Equal(t, "10", views[0].ServiceCharge.String())

	_, err = h.Handle(context.Background(), ListServicesQuery{})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestListProducts_FilterByService(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	hair := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	testutil.AddBrand(t, db, hair.Product.ID, "Sunsilk")
	testutil.CreateCatalog(t, db, root.ID, "Skin Care", "Lotion", "Nivea")

	h := NewListProductsHandler(repository.NewGormProductRepository(db))
	admin := testutil.SuperAdmin(root.ID)

	all, err := h.Handle(context.Background(), ListProductsQuery{Actor: admin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := h.Handle(context.Background(), ListProductsQuery{Actor: admin, ServiceID: &hair.Service.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Shampoo", filtered[0].Name)
	assert.Equal(t, "Hair Care", filtered[0].ServiceName)
	assert.Equal(t, int64(2), filtered[0].BrandCount)
}

func TestGetProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	cat := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	h := NewGetProductHandler(repository.NewGormProductRepository(db))
	admin := testutil.SuperAdmin(root.ID)

	view, err := h.Handle(context.Background(), GetProductQuery{Actor: admin, ID: cat.Product.ID})
	require.NoError(t, err)
	assert.Equal(t, "Shampoo", view.Name)
	assert.Equal(t, "root", view.CreatedByName)

	_, err = h.Handle(context.Background(), GetProductQuery{Actor: admin, ID: 999})
	assert.EqualError(t, err, "Product not found")
}

func TestListBrands(t *testing.T) {
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	hair := testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove")
	testutil.AddBrand(t, db, hair.Product.ID, "Aveda")
	testutil.CreateCatalog(t, db, root.ID, "Skin Care", "Lotion", "Nivea")
	clerk := testutil.CreateUser(t, db, "clerk", access.RoleNormalAdmin)

	h := NewListBrandsHandler(repository.NewGormBrandRepository(db))
	views, err := h.Handle(context.Background(), ListBrandsQuery{
		Actor:     testutil.NormalAdmin(clerk.ID, access.PermissionSet{}),
		ProductID: &hair.Product.ID,
	})
	require.NoError(t, err, "any admin can view brands")
	require.Len(t, views, 2)
	assert.Equal(t, "Aveda", views[0].Name)
	assert.Equal(t, "Dove", views[1].Name)
	assert.Equal(t, "Shampoo", views[1].ProductName)

	all, err := h.Handle(context.Background(), ListBrandsQuery{Actor: testutil.SuperAdmin(root.ID)})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
