package command

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	Actor *access.Identity
	ID    uint
}

// DeleteUserHandler handles user deletion command
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command. Accounts that authored records are kept.
func (h *DeleteUserHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := access.Authorize(cmd.Actor, access.FeatureUser, access.ActionDelete); err != nil {
		return err
	}
	if cmd.ID == cmd.Actor.UserID {
		return apperror.Validation("You cannot delete your own account")
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err, "failed to load user")
	}

	authored, err := h.repo.CountAuthoredRecords(ctx, cmd.ID)
	if err != nil {
		return apperror.Internal(err, "failed to count authored records")
	}
	if authored > 0 {
		return apperror.Conflict("Cannot delete a user who has created records; deactivate the account instead")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err, "failed to delete user")
	}
	return nil
}
