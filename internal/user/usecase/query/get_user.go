package query

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// GetUserQuery represents the query to get a user by ID
type GetUserQuery struct {
	Actor *access.Identity
	ID    uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query. A NORMAL_ADMIN cannot see deactivated accounts other than their own.
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*domain.UserView, error) {
	if err := access.Authorize(q.Actor, access.FeatureUser, access.ActionView); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err, "failed to load user")
	}

	if !user.IsActive && !q.Actor.IsSuperAdmin() && q.Actor.UserID != user.ID {
		return nil, apperror.NotFound("User not found")
	}

	view := user.ViewFor(q.Actor)
	return &view, nil
}
