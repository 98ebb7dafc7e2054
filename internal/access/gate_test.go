package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

func normalAdmin(perms PermissionSet) *Identity {
	return &Identity{UserID: 2, Username: "clerk", Role: RoleNormalAdmin, Permissions: perms}
}

func TestAuthorize_NoSessionIsUnauthenticated(t *testing.T) {
	t.Parallel()

	for _, feature := range []Feature{FeatureService, FeatureStockOut, FeatureBrand, FeatureUser} {
		err := Authorize(nil, feature, ActionView)
		assert.ErrorIs(t, err, apperror.ErrUnauthenticated, feature)
	}
}

func TestAuthorize_SuperAdminIgnoresPermissionMap(t *testing.T) {
	t.Parallel()

	id := &Identity{UserID: 1, Role: RoleSuperAdmin}
	for _, feature := range []Feature{FeatureService, FeatureProduct, FeatureStockIn, FeatureStockOut, FeatureBrand, FeatureUser} {
		for _, action := range allActions {
			assert.NoError(t, Authorize(id, feature, action), "%s %s", feature, action)
		}
	}
}

func TestAuthorize_NormalAdminNeedsGrantedAction(t *testing.T) {
	t.Parallel()

	denied := normalAdmin(PermissionSet{StockOut: ActionSet{ActionView}})
	err := Authorize(denied, FeatureStockOut, ActionCreate)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Equal(t, "You do not have permission to create stock out entries", err.Error())

	granted := normalAdmin(PermissionSet{StockOut: ActionSet{ActionView, ActionCreate}})
	assert.NoError(t, Authorize(granted, FeatureStockOut, ActionCreate))
	assert.ErrorIs(t, Authorize(granted, FeatureStockIn, ActionCreate), apperror.ErrUnauthorized)
}

func TestAuthorize_RoleLockedFeatures(t *testing.T) {
	t.Parallel()

	id := normalAdmin(FullPermissions())

	assert.NoError(t, Authorize(id, FeatureBrand, ActionView))
	assert.NoError(t, Authorize(id, FeatureUser, ActionView))
	for _, action := range []Action{ActionCreate, ActionEdit, ActionDelete} {
		assert.ErrorIs(t, Authorize(id, FeatureBrand, action), apperror.ErrUnauthorized)
		assert.ErrorIs(t, Authorize(id, FeatureUser, action), apperror.ErrUnauthorized)
	}
}

func TestAuthorize_UnknownRoleIsDenied(t *testing.T) {
	t.Parallel()

	id := &Identity{UserID: 3, Role: Role("GUEST"), Permissions: FullPermissions()}
	assert.ErrorIs(t, Authorize(id, FeatureService, ActionView), apperror.ErrUnauthorized)
}

func TestRequireSuperAdmin(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, RequireSuperAdmin(nil), apperror.ErrUnauthenticated)
	assert.ErrorIs(t, RequireSuperAdmin(normalAdmin(FullPermissions())), apperror.ErrUnauthorized)
	assert.NoError(t, RequireSuperAdmin(&Identity{UserID: 1, Role: RoleSuperAdmin}))
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, IdentityFrom(context.Background()))

	id := normalAdmin(PermissionSet{})
	ctx := WithIdentity(context.Background(), id)
	assert.Same(t, id, IdentityFrom(ctx))
}
