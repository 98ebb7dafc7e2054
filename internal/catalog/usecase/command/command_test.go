package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/repository"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

type repos struct {
	services *repository.GormServiceRepository
	products *repository.GormProductRepository
	brands   *repository.GormBrandRepository
}

func setup(t *testing.T) (*gorm.DB, repos, *access.Identity) {
	t.Helper()
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	return db, repos{
		services: repository.NewGormServiceRepository(db),
		products: repository.NewGormProductRepository(db),
		brands:   repository.NewGormBrandRepository(db),
	}, testutil.SuperAdmin(root.ID)
}

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func TestCreateService(t *testing.T) {
	_, r, admin := setup(t)
	h := NewCreateServiceHandler(r.services)
	ctx := context.Background()

	service, err := h.Handle(ctx, CreateServiceCommand{
		Actor:         admin,
		Name:          "  Hair Care ",
		ServiceCharge: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hair Care", service.Name)
	assert.Equal(t, admin.UserID, service.CreatedByID)

	_, err = h.Handle(ctx, CreateServiceCommand{Actor: admin, Name: "hair care"})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.EqualError(t, err, "A service with this name already exists")

	_, err = h.Handle(ctx, CreateServiceCommand{Actor: admin, Name: "   "})
	assert.EqualError(t, err, "Service name is required")

	_, err = h.Handle(ctx, CreateServiceCommand{Actor: admin, Name: "Nails", ServiceCharge: decimal.NewFromInt(-1)})
	assert.EqualError(t, err, "Service charge cannot be negative")
}

func TestCreateService_NormalAdminPermissions(t *testing.T) {
	db, r, _ := setup(t)
	clerk := testutil.CreateUser(t, db, "clerk", access.RoleNormalAdmin)
	h := NewCreateServiceHandler(r.services)

	_, err := h.Handle(context.Background(), CreateServiceCommand{
		Actor: testutil.NormalAdmin(clerk.ID, access.PermissionSet{Service: access.ActionSet{access.ActionView}}),
		Name:  "Hair Care",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = h.Handle(context.Background(), CreateServiceCommand{
		Actor: testutil.NormalAdmin(clerk.ID, access.PermissionSet{Service: access.ActionSet{access.ActionCreate}}),
		Name:  "Hair Care",
	})
	assert.NoError(t, err)
}

func TestUpdateService(t *testing.T) {
	db, r, admin := setup(t)
	cat := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	testutil.CreateCatalog(t, db, admin.UserID, "Skin Care", "Lotion", "Nivea")
	h := NewUpdateServiceHandler(r.services)
	ctx := context.Background()

	updated, err := h.Handle(ctx, UpdateServiceCommand{Actor: admin, ID: cat.Service.ID, Name: strPtr("HAIR CARE")})
	require.NoError(t, err, "renaming to its own name in another case is allowed")
	assert.Equal(t, "HAIR CARE", updated.Name)

	_, err = h.Handle(ctx, UpdateServiceCommand{Actor: admin, ID: cat.Service.ID, Name: strPtr("skin care")})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = h.Handle(ctx, UpdateServiceCommand{Actor: admin, ID: 999, Name: strPtr("Nails")})
	assert.EqualError(t, err, "Service not found")
}

func TestDeleteService(t *testing.T) {
	db, r, admin := setup(t)
	cat := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	empty, err := NewCreateServiceHandler(r.services).Handle(context.Background(), CreateServiceCommand{Actor: admin, Name: "Nails"})
	require.NoError(t, err)
	h := NewDeleteServiceHandler(r.services)

	err = h.Handle(context.Background(), DeleteServiceCommand{Actor: admin, ID: cat.Service.ID})
	assert.EqualError(t, err, "Cannot delete a service that still has products")

	require.NoError(t, h.Handle(context.Background(), DeleteServiceCommand{Actor: admin, ID: empty.ID}))
	err = h.Handle(context.Background(), DeleteServiceCommand{Actor: admin, ID: empty.ID})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateProduct(t *testing.T) {
	db, r, admin := setup(t)
	cat := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	h := NewCreateProductHandler(r.products, r.services)
	ctx := context.Background()

	product, err := h.Handle(ctx, CreateProductCommand{Actor: admin, Name: "Conditioner", ServiceID: cat.Service.ID})
	require.NoError(t, err)
	assert.NotZero(t, product.ID)

	_, err = h.Handle(ctx, CreateProductCommand{Actor: admin, Name: "SHAMPOO", ServiceID: cat.Service.ID})
	assert.EqualError(t, err, "A product with this name already exists")

	_, err = h.Handle(ctx, CreateProductCommand{Actor: admin, Name: "Gel"})
	assert.EqualError(t, err, "Service is required")

	_, err = h.Handle(ctx, CreateProductCommand{Actor: admin, Name: "Gel", ServiceID: 999})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateProduct(t *testing.T) {
	db, r, admin := setup(t)
	hair := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	skin := testutil.CreateCatalog(t, db, admin.UserID, "Skin Care", "Lotion", "Nivea")
	h := NewUpdateProductHandler(r.products, r.services)
	ctx := context.Background()

	updated, err := h.Handle(ctx, UpdateProductCommand{Actor: admin, ID: hair.Product.ID, Name: strPtr(" shampoo ")})
	require.NoError(t, err, "renaming to its own name in another case is allowed")
	assert.Equal(t, "shampoo", updated.Name)

	_, err = h.Handle(ctx, UpdateProductCommand{Actor: admin, ID: hair.Product.ID, Name: strPtr("LOTION")})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.EqualError(t, err, "A product with this name already exists")

	_, err = h.Handle(ctx, UpdateProductCommand{Actor: admin, ID: hair.Product.ID, ServiceID: uintPtr(999)})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualError(t, err, "Service not found")

	moved, err := h.Handle(ctx, UpdateProductCommand{Actor: admin, ID: hair.Product.ID, ServiceID: uintPtr(skin.Service.ID)})
	require.NoError(t, err)
	assert.Equal(t, skin.Service.ID, moved.ServiceID)

	_, err = h.Handle(ctx, UpdateProductCommand{Actor: admin, ID: 999, Name: strPtr("Gel")})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	clerk := testutil.CreateUser(t, db, "clerk", access.RoleNormalAdmin)
	viewer := testutil.NormalAdmin(clerk.ID, access.PermissionSet{Product: access.ActionSet{access.ActionView, access.ActionCreate}})
	_, err = h.Handle(ctx, UpdateProductCommand{Actor: viewer, ID: hair.Product.ID, Name: strPtr("Shampoo")})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.EqualError(t, err, "You do not have permission to edit products")

	editor := testutil.NormalAdmin(clerk.ID, access.PermissionSet{Product: access.ActionSet{access.ActionEdit}})
	updated, err = h.Handle(ctx, UpdateProductCommand{Actor: editor, ID: hair.Product.ID, Name: strPtr("Shampoo")})
	require.NoError(t, err)
	assert.Equal(t, "Shampoo", updated.Name)
}

func TestDeleteProduct_BlockedByDependents(t *testing.T) {
	db, r, admin := setup(t)
	cat := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	h := NewDeleteProductHandler(r.products)

	err := h.Handle(context.Background(), DeleteProductCommand{Actor: admin, ID: cat.Product.ID})
	assert.EqualError(t, err, "Cannot delete a product that still has brands or stock entries")

	require.NoError(t, NewDeleteBrandHandler(r.brands).Handle(context.Background(), DeleteBrandCommand{Actor: admin, ID: cat.Brand.ID}))
	assert.NoError(t, h.Handle(context.Background(), DeleteProductCommand{Actor: admin, ID: cat.Product.ID}))
}

func TestBrands_SuperAdminOnly(t *testing.T) {
	db, r, admin := setup(t)
	cat := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	clerk := testutil.CreateUser(t, db, "clerk", access.RoleNormalAdmin)
	h := NewCreateBrandHandler(r.brands, r.products)

	_, err := h.Handle(context.Background(), CreateBrandCommand{
		Actor:     testutil.NormalAdmin(clerk.ID, access.FullPermissions()),
		Name:      "Sunsilk",
		ProductID: cat.Product.ID,
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	brand, err := h.Handle(context.Background(), CreateBrandCommand{Actor: admin, Name: "Sunsilk", ProductID: cat.Product.ID})
	require.NoError(t, err)
	assert.Equal(t, cat.Product.ID, brand.ProductID)
}

func TestCreateBrand_NameUniquePerProduct(t *testing.T) {
	db, r, admin := setup(t)
	hair := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	skin := testutil.CreateCatalog(t, db, admin.UserID, "Skin Care", "Lotion", "Nivea")
	h := NewCreateBrandHandler(r.brands, r.products)
	ctx := context.Background()

	_, err := h.Handle(ctx, CreateBrandCommand{Actor: admin, Name: "dove", ProductID: hair.Product.ID})
	assert.EqualError(t, err, "A brand with this name already exists")

	_, err = h.Handle(ctx, CreateBrandCommand{Actor: admin, Name: "Dove", ProductID: skin.Product.ID})
	assert.NoError(t, err)

	_, err = h.Handle(ctx, CreateBrandCommand{Actor: admin, Name: "Dove"})
	assert.EqualError(t, err, "Product is required")
}

func TestUpdateBrand(t *testing.T) {
	db, r, admin := setup(t)
	hair := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	skin := testutil.CreateCatalog(t, db, admin.UserID, "Skin Care", "Lotion", "Nivea")
	stocked := testutil.AddBrand(t, db, hair.Product.ID, "Sunsilk")
	testutil.StockIn(t, db, hair.Product.ID, stocked.ID, 1, admin.UserID)
	h := NewUpdateBrandHandler(r.brands, r.products)
	ctx := context.Background()

	_, err := h.Handle(ctx, UpdateBrandCommand{Actor: admin, ID: stocked.ID, ProductID: uintPtr(skin.Product.ID)})
	assert.EqualError(t, err, "Cannot move a brand that already has stock entries")

	_, err = h.Handle(ctx, UpdateBrandCommand{Actor: admin, ID: hair.Brand.ID, Name: strPtr("Nivea"), ProductID: uintPtr(skin.Product.ID)})
	assert.EqualError(t, err, "A brand with this name already exists")

	moved, err := h.Handle(ctx, UpdateBrandCommand{Actor: admin, ID: hair.Brand.ID, ProductID: uintPtr(skin.Product.ID)})
	require.NoError(t, err)
	assert.Equal(t, skin.Product.ID, moved.ProductID)

	renamed, err := h.Handle(ctx, UpdateBrandCommand{Actor: admin, ID: stocked.ID, Name: strPtr("Sunsilk Pro")})
	require.NoError(t, err)
	assert.Equal(t, "Sunsilk Pro", renamed.Name)
}

func TestDeleteBrand_BlockedByStock(t *testing.T) {
	db, r, admin := setup(t)
	cat := testutil.CreateCatalog(t, db, admin.UserID, "Hair Care", "Shampoo", "Dove")
	testutil.StockOut(t, db, cat.Product.ID, cat.Brand.ID, 1, admin.UserID)

	err := NewDeleteBrandHandler(r.brands).Handle(context.Background(), DeleteBrandCommand{Actor: admin, ID: cat.Brand.ID})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.EqualError(t, err, "Cannot delete a brand that still has stock entries")
}
