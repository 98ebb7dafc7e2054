package command

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/stock/domain"
	"github.com/tair/inventory-tracker/internal/stock/repository"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

type fixture struct {
	db    *gorm.DB
	repo  domain.Repository
	admin *access.Identity
	cat   testutil.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	return fixture{
		db:    db,
		repo:  repository.NewGormStockRepository(db),
		admin: testutil.SuperAdmin(root.ID),
		cat:   testutil.CreateCatalog(t, db, root.ID, "Hair Care", "Shampoo", "Dove"),
	}
}

func (f fixture) available(t *testing.T, productID, brandID uint) int64 {
	t.Helper()
	n, err := domain.Available(context.Background(), f.repo, domain.BrandScope(productID, brandID))
	require.NoError(t, err)
	return n
}

func (f fixture) stockOutRows(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&domain.StockOut{}).Count(&n).Error)
	return n
}

func int64Ptr(v int64) *int64 { return &v }
func uintPtr(v uint) *uint    { return &v }

func TestCreateStockOut_WithinAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 20, f.admin.UserID)

	h := NewCreateStockOutHandler(f.repo)
	entry, err := h.Handle(ctx, CreateStockOutCommand{
		Actor:     f.admin,
		ProductID: f.cat.Product.ID,
		BrandID:   f.cat.Brand.ID,
		Quantity:  15,
		Comments:  "  salon use ",
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "salon use", entry.Comments)
	assert.Equal(t, f.admin.UserID, entry.CreatedByID)
	assert.Equal(t, int64(5), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))
}

func TestCreateStockOut_RejectsOverdraw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 5, f.admin.UserID)

	h := NewCreateStockOutHandler(f.repo)
	_, err := h.Handle(ctx, CreateStockOutCommand{
		Actor:     f.admin,
		ProductID: f.cat.Product.ID,
		BrandID:   f.cat.Brand.ID,
		Quantity:  10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInsufficientStock)
	assert.EqualError(t, err, "Insufficient stock. Available: 5, Requested: 10")
	assert.Equal(t, int64(0), f.stockOutRows(t))
	assert.Equal(t, int64(5), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))
}

func TestCreateStockOut_ScopedByBrand(t *testing.T) {
	f := newFixture(t)
	other := testutil.AddBrand(t, f.db, f.cat.Product.ID, "Sunsilk")
	testutil.StockIn(t, f.db, f.cat.Product.ID, other.ID, 50, f.admin.UserID)

	h := NewCreateStockOutHandler(f.repo)
	_, err := h.Handle(context.Background(), CreateStockOutCommand{
		Actor:     f.admin,
		ProductID: f.cat.Product.ID,
		BrandID:   f.cat.Brand.ID,
		Quantity:  1,
	})
	assert.EqualError(t, err, "Insufficient stock. Available: 0, Requested: 1")
}

func TestCreateStockOut_Validation(t *testing.T) {
	f := newFixture(t)
	foreign := testutil.CreateCatalog(t, f.db, f.admin.UserID, "Skin Care", "Lotion", "Nivea")
	h := NewCreateStockOutHandler(f.repo)

	tests := []struct {
		name string
		cmd  CreateStockOutCommand
		kind apperror.Kind
		msg  string
	}{
		{
			name: "no session",
			cmd:  CreateStockOutCommand{ProductID: f.cat.Product.ID, BrandID: f.cat.Brand.ID, Quantity: 1},
			kind: apperror.KindUnauthenticated,
			msg:  "Authentication required",
		},
		{
			name: "zero quantity",
			cmd:  CreateStockOutCommand{Actor: f.admin, ProductID: f.cat.Product.ID, BrandID: f.cat.Brand.ID},
			kind: apperror.KindValidation,
			msg:  "Quantity must be greater than zero",
		},
		{
			name: "brand of another product",
			cmd:  CreateStockOutCommand{Actor: f.admin, ProductID: f.cat.Product.ID, BrandID: foreign.Brand.ID, Quantity: 1},
			kind: apperror.KindValidation,
			msg:  "Brand does not belong to the selected product",
		},
		{
			name: "unknown brand",
			cmd:  CreateStockOutCommand{Actor: f.admin, ProductID: f.cat.Product.ID, BrandID: 999, Quantity: 1},
			kind: apperror.KindNotFound,
			msg:  "Brand not found",
		},
		{
			name: "missing brand",
			cmd:  CreateStockOutCommand{Actor: f.admin, ProductID: f.cat.Product.ID, Quantity: 1},
			kind: apperror.KindValidation,
			msg:  "Brand is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
	assert.Equal(t, int64(0), f.stockOutRows(t))
}

func TestCreateStockOut_PermissionGate(t *testing.T) {
	f := newFixture(t)
	testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 10, f.admin.UserID)
	clerk := testutil.CreateUser(t, f.db, "clerk", access.RoleNormalAdmin)
	h := NewCreateStockOutHandler(f.repo)

	cmd := CreateStockOutCommand{
		Actor:     testutil.NormalAdmin(clerk.ID, access.PermissionSet{StockOut: access.ActionSet{access.ActionView}}),
		ProductID: f.cat.Product.ID,
		BrandID:   f.cat.Brand.ID,
		Quantity:  1,
	}
	_, err := h.Handle(context.Background(), cmd)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	cmd.Actor = testutil.NormalAdmin(clerk.ID, access.PermissionSet{StockOut: access.ActionSet{access.ActionCreate}})
	_, err = h.Handle(context.Background(), cmd)
	assert.NoError(t, err)
}

func TestUpdateStockOut_SameScopeChecksDelta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 20, f.admin.UserID)
	out := testutil.StockOut(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 15, f.admin.UserID)
	h := NewUpdateStockOutHandler(f.repo)

	_, err := h.Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, Quantity: int64Ptr(21)})
	assert.EqualError(t, err, "Insufficient stock. Available: 5, Additional requested: 6")
	assert.Equal(t, int64(5), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))

	updated, err := h.Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, Quantity: int64Ptr(18)})
	require.NoError(t, err)
	assert.Equal(t, int64(18), updated.Quantity)
	assert.Equal(t, int64(2), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))

	_, err = h.Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, Quantity: int64Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(17), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))
}

func TestUpdateStockOut_MoveNeedsFullQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := testutil.AddBrand(t, f.db, f.cat.Product.ID, "Sunsilk")
	testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 20, f.admin.UserID)
	testutil.StockIn(t, f.db, f.cat.Product.ID, other.ID, 4, f.admin.UserID)
	out := testutil.StockOut(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 5, f.admin.UserID)
	h := NewUpdateStockOutHandler(f.repo)

	_, err := h.Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, BrandID: uintPtr(other.ID)})
	assert.EqualError(t, err, "Insufficient stock. Available: 4, Requested: 5")

	moved, err := h.Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, BrandID: uintPtr(other.ID), Quantity: int64Ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.BrandID)
	assert.Equal(t, int64(20), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))
	assert.Equal(t, int64(0), f.available(t, f.cat.Product.ID, other.ID))
}

func TestUpdateStockOut_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := NewUpdateStockOutHandler(f.repo).Handle(context.Background(), UpdateStockOutCommand{Actor: f.admin, ID: 42, Quantity: int64Ptr(1)})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteStockOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	out := testutil.StockOut(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 1, f.admin.UserID)
	h := NewDeleteStockOutHandler(f.repo)

	require.NoError(t, h.Handle(ctx, DeleteStockOutCommand{Actor: f.admin, ID: out.ID}))
	assert.Equal(t, int64(0), f.stockOutRows(t))

	err := h.Handle(ctx, DeleteStockOutCommand{Actor: f.admin, ID: out.ID})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreateStockIn(t *testing.T) {
	f := newFixture(t)
	h := NewCreateStockInHandler(f.repo)

	entry, err := h.Handle(context.Background(), CreateStockInCommand{
		Actor:        f.admin,
		ProductID:    f.cat.Product.ID,
		BrandID:      f.cat.Brand.ID,
		Quantity:     20,
		PricePerUnit: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, int64(20), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))

	_, err = h.Handle(context.Background(), CreateStockInCommand{
		Actor:        f.admin,
		ProductID:    f.cat.Product.ID,
		BrandID:      f.cat.Brand.ID,
		Quantity:     1,
		PricePerUnit: decimal.NewFromInt(-1),
	})
	assert.EqualError(t, err, "Price per unit cannot be negative")
}

func TestUpdateStockIn_CannotStrandStockOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 20, f.admin.UserID)
	testutil.StockOut(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 15, f.admin.UserID)
	h := NewUpdateStockInHandler(f.repo)

	_, err := h.Handle(ctx, UpdateStockInCommand{Actor: f.admin, ID: in.ID, Quantity: int64Ptr(10)})
	assert.EqualError(t, err, "Insufficient stock. Available: 5, Additional requested: 10")

	updated, err := h.Handle(ctx, UpdateStockInCommand{Actor: f.admin, ID: in.ID, Quantity: int64Ptr(15)})
	require.NoError(t, err)
	assert.Equal(t, int64(15), updated.Quantity)
	assert.Equal(t, int64(0), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))

	comment := "recount"
	_, err = h.Handle(ctx, UpdateStockInCommand{Actor: f.admin, ID: in.ID, Comments: &comment})
	assert.NoError(t, err, "unchanged quantity needs no stock")
}

func TestDeleteStockIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 10, f.admin.UserID)
	second := testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 10, f.admin.UserID)
	testutil.StockOut(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 12, f.admin.UserID)
	h := NewDeleteStockInHandler(f.repo)

	err := h.Handle(ctx, DeleteStockInCommand{Actor: f.admin, ID: first.ID})
	assert.EqualError(t, err, "Insufficient stock. Available: 8, Requested: 10")

	testutil.StockIn(t, f.db, f.cat.Product.ID, f.cat.Brand.ID, 2, f.admin.UserID)
	require.NoError(t, h.Handle(ctx, DeleteStockInCommand{Actor: f.admin, ID: second.ID}))
	assert.Equal(t, int64(0), f.available(t, f.cat.Product.ID, f.cat.Brand.ID))

	err = h.Handle(ctx, DeleteStockInCommand{Actor: f.admin, ID: second.ID})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

// racingRepo runs beforeLock ahead of every lock, standing in for a writer
// that commits between the unlocked read and the lock.
type racingRepo struct {
	domain.Repository
	beforeLock func()
	locks      [][]uint
}

func (r *racingRepo) WithinScopes(ctx context.Context, brandIDs []uint, fn func(tx domain.Repository) error) error {
	r.locks = append(r.locks, append([]uint(nil), brandIDs...))
	if r.beforeLock != nil {
		r.beforeLock()
	}
	return r.Repository.WithinScopes(ctx, brandIDs, fn)
}

func moveEntry(t *testing.T, db *gorm.DB, model interface{}, id, brandID uint) {
	t.Helper()
	require.NoError(t, db.Model(model).Where("id = ?", id).Update("brand_id", brandID).Error)
}

func TestUpdateStockOut_RelocksWhenEntryMoves(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dove := f.cat.Brand
	aveda := testutil.AddBrand(t, f.db, f.cat.Product.ID, "Aveda")
	testutil.StockIn(t, f.db, f.cat.Product.ID, dove.ID, 10, f.admin.UserID)
	testutil.StockIn(t, f.db, f.cat.Product.ID, aveda.ID, 20, f.admin.UserID)
	out := testutil.StockOut(t, f.db, f.cat.Product.ID, dove.ID, 5, f.admin.UserID)

	moved := false
	repo := &racingRepo{Repository: f.repo}
	repo.beforeLock = func() {
		if !moved {
			moved = true
			moveEntry(t, f.db, &domain.StockOut{}, out.ID, aveda.ID)
		}
	}

	updated, err := NewUpdateStockOutHandler(repo).Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, Quantity: int64Ptr(8)})
	require.NoError(t, err)
	assert.Equal(t, aveda.ID, updated.BrandID)
	assert.Equal(t, [][]uint{{dove.ID}, {aveda.ID}}, repo.locks)
	assert.Equal(t, int64(10), f.available(t, f.cat.Product.ID, dove.ID))
	assert.Equal(t, int64(12), f.available(t, f.cat.Product.ID, aveda.ID))
}

func TestUpdateStockOut_GivesUpWhenEntryKeepsMoving(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dove := f.cat.Brand
	aveda := testutil.AddBrand(t, f.db, f.cat.Product.ID, "Aveda")
	testutil.StockIn(t, f.db, f.cat.Product.ID, dove.ID, 10, f.admin.UserID)
	testutil.StockIn(t, f.db, f.cat.Product.ID, aveda.ID, 10, f.admin.UserID)
	out := testutil.StockOut(t, f.db, f.cat.Product.ID, dove.ID, 5, f.admin.UserID)

	next := aveda.ID
	repo := &racingRepo{Repository: f.repo}
	repo.beforeLock = func() {
		moveEntry(t, f.db, &domain.StockOut{}, out.ID, next)
		if next == aveda.ID {
			next = dove.ID
		} else {
			next = aveda.ID
		}
	}

	_, err := NewUpdateStockOutHandler(repo).Handle(ctx, UpdateStockOutCommand{Actor: f.admin, ID: out.ID, Quantity: int64Ptr(6)})
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Len(t, repo.locks, lockAttempts)

	var stored domain.StockOut
	require.NoError(t, f.db.First(&stored, out.ID).Error)
	assert.Equal(t, int64(5), stored.Quantity)
}

func TestDeleteStockIn_GuardsScopeEntryMovedTo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dove := f.cat.Brand
	aveda := testutil.AddBrand(t, f.db, f.cat.Product.ID, "Aveda")
	in := testutil.StockIn(t, f.db, f.cat.Product.ID, dove.ID, 10, f.admin.UserID)
	testutil.StockOut(t, f.db, f.cat.Product.ID, aveda.ID, 4, f.admin.UserID)

	moved := false
	repo := &racingRepo{Repository: f.repo}
	repo.beforeLock = func() {
		if !moved {
			moved = true
			moveEntry(t, f.db, &domain.StockIn{}, in.ID, aveda.ID)
		}
	}

	err := NewDeleteStockInHandler(repo).Handle(ctx, DeleteStockInCommand{Actor: f.admin, ID: in.ID})
	assert.ErrorIs(t, err, apperror.ErrInsufficientStock)
	assert.EqualError(t, err, "Insufficient stock. Available: 6, Requested: 10")
	assert.Equal(t, [][]uint{{dove.ID}, {aveda.ID}}, repo.locks)
	assert.Equal(t, int64(6), f.available(t, f.cat.Product.ID, aveda.ID))
}
