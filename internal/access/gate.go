package access

import (
	"context"

	"github.com/tair/inventory-tracker/pkg/apperror"
)

// Identity is the acting user, resolved once per request.
type Identity struct {
	UserID      uint
	Username    string
	Email       string
	Role        Role
	Permissions PermissionSet
}

func (id *Identity) IsSuperAdmin() bool {
	return id != nil && id.Role == RoleSuperAdmin
}

type identityKey struct{}

// WithIdentity stores the identity in ctx.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx, or nil.
func IdentityFrom(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}

// Authorize decides whether id may perform action on feature.
//
// A missing identity is always unauthenticated. SUPER_ADMIN may do anything.
// Brands and users can be viewed by any admin but only changed by a SUPER_ADMIN.
// Everything else depends on the NORMAL_ADMIN's permission map.
func Authorize(id *Identity, feature Feature, action Action) error {
	if err := RequireSession(id); err != nil {
		return err
	}

	switch id.Role {
	case RoleSuperAdmin:
		return nil
	case RoleNormalAdmin:
	default:
		return deny(feature, action)
	}

	if !feature.Grantable() {
		if action == ActionView {
			return nil
		}
		return deny(feature, action)
	}

	if id.Permissions.Allows(feature, action) {
		return nil
	}
	return deny(feature, action)
}

// RequireSession rejects a missing identity.
func RequireSession(id *Identity) error {
	if id == nil {
		return apperror.Unauthenticated("Authentication required")
	}
	return nil
}

// RequireSuperAdmin rejects anyone but a SUPER_ADMIN.
func RequireSuperAdmin(id *Identity) error {
	if err := RequireSession(id); err != nil {
		return err
	}
	if !id.IsSuperAdmin() {
		return apperror.Unauthorized("Only a super admin can perform this action")
	}
	return nil
}

func deny(feature Feature, action Action) error {
	return apperror.Unauthorized("You do not have permission to %s %s", action, feature.label())
}
