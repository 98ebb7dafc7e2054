package query

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// IdentityResolver loads the current role and permissions of a token subject,
// so that role changes and deactivation apply to existing sessions.
type IdentityResolver struct {
	repo domain.UserRepository
}

func NewIdentityResolver(repo domain.UserRepository) *IdentityResolver {
	return &IdentityResolver{repo: repo}
}

func (r *IdentityResolver) ResolveIdentity(ctx context.Context, userID uint) (*access.Identity, error) {
	user, err := r.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.Unauthenticated("Session user no longer exists")
		}
		return nil, apperror.Internal(err, "failed to resolve identity")
	}
	if !user.IsActive {
		return nil, apperror.Unauthenticated("Account is deactivated")
	}
	return user.Identity(), nil
}
