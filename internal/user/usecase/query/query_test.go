package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/testutil"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/internal/user/repository"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

var clerkPerms = access.PermissionSet{StockOut: access.ActionSet{access.ActionView, access.ActionCreate}}

type userFixture struct {
	repo    *repository.GormUserRepository
	root    *domain.User
	clerk   *domain.User
	retired *domain.User
}

func newUserFixture(t *testing.T) userFixture {
	t.Helper()
	db := testutil.NewTestDB(t)

	root := testutil.CreateUser(t, db, "root", access.RoleSuperAdmin)
	clerk := testutil.CreateUser(t, db, "clerk", access.RoleNormalAdmin)
	clerk.Permissions = datatypes.NewJSONType(clerkPerms)
	require.NoError(t, db.Save(clerk).Error)

	retired := testutil.CreateUser(t, db, "retired", access.RoleNormalAdmin)
	require.NoError(t, db.Model(retired).Update("is_active", false).Error)

	return userFixture{repo: repository.NewGormUserRepository(db), root: root, clerk: clerk, retired: retired}
}

func usernames(views []domain.UserView) []string {
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Username)
	}
	return names
}

func TestListUsers(t *testing.T) {
	f := newUserFixture(t)
	h := NewListUsersHandler(f.repo)
	ctx := context.Background()

	t.Run("super admin sees every account with permissions", func(t *testing.T) {
		views, err := h.Handle(ctx, ListUsersQuery{Actor: testutil.SuperAdmin(f.root.ID)})
		require.NoError(t, err)
		assert.Equal(t, []string{"clerk", "retired", "root"}, usernames(views))
		for _, v := range views {
			assert.NotNil(t, v.Permissions, v.Username)
		}
		assert.Equal(t, clerkPerms.StockOut, views[0].Permissions.StockOut)
	})

	t.Run("normal admin sees active accounts and only their own permissions", func(t *testing.T) {
		views, err := h.Handle(ctx, ListUsersQuery{Actor: testutil.NormalAdmin(f.clerk.ID, clerkPerms)})
		require.NoError(t, err)
		assert.Equal(t, []string{"clerk", "root"}, usernames(views))
		require.NotNil(t, views[0].Permissions)
		assert.Equal(t, clerkPerms.StockOut, views[0].Permissions.StockOut)
		assert.Nil(t, views[1].Permissions)
	})

	t.Run("no session", func(t *testing.T) {
		_, err := h.Handle(ctx, ListUsersQuery{})
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})
}

func TestGetUser(t *testing.T) {
	f := newUserFixture(t)
	h := NewGetUserHandler(f.repo)
	ctx := context.Background()
	clerk := testutil.NormalAdmin(f.clerk.ID, clerkPerms)

	view, err := h.Handle(ctx, GetUserQuery{Actor: clerk, ID: f.root.ID})
	require.NoError(t, err)
	assert.Equal(t, "root", view.Username)
	assert.Nil(t, view.Permissions)

	view, err = h.Handle(ctx, GetUserQuery{Actor: clerk, ID: f.clerk.ID})
	require.NoError(t, err)
	require.NotNil(t, view.Permissions)
	assert.True(t, view.Permissions.Allows(access.FeatureStockOut, access.ActionCreate))

	_, err = h.Handle(ctx, GetUserQuery{Actor: clerk, ID: f.retired.ID})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	view, err = h.Handle(ctx, GetUserQuery{Actor: testutil.SuperAdmin(f.root.ID), ID: f.retired.ID})
	require.NoError(t, err)
	assert.False(t, view.IsActive)
	assert.NotNil(t, view.Permissions)

	_, err = h.Handle(ctx, GetUserQuery{Actor: clerk, ID: 999})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = h.Handle(ctx, GetUserQuery{ID: f.root.ID})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestIdentityResolver(t *testing.T) {
	f := newUserFixture(t)
	r := NewIdentityResolver(f.repo)
	ctx := context.Background()

	id, err := r.ResolveIdentity(ctx, f.clerk.ID)
	require.NoError(t, err)
	assert.Equal(t, access.RoleNormalAdmin, id.Role)
	assert.Equal(t, "clerk", id.Username)
	assert.True(t, id.Permissions.Allows(access.FeatureStockOut, access.ActionCreate))

	_, err = r.ResolveIdentity(ctx, f.retired.ID)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.EqualError(t, err, "Account is deactivated")

	_, err = r.ResolveIdentity(ctx, 999)
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}
