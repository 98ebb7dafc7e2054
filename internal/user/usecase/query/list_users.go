package query

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// ListUsersQuery represents the query to list users
type ListUsersQuery struct {
	Actor *access.Identity
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query. Only a SUPER_ADMIN sees deactivated accounts.
func (h *ListUsersHandler) Handle(ctx context.Context, q ListUsersQuery) ([]domain.UserView, error) {
	if err := access.Authorize(q.Actor, access.FeatureUser, access.ActionView); err != nil {
		return nil, err
	}

	users, err := h.repo.FindAll(ctx, !q.Actor.IsSuperAdmin())
	if err != nil {
		return nil, apperror.Internal(err, "failed to list users")
	}

	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].ViewFor(q.Actor))
	}
	return views, nil
}
