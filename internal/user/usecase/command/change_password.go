package command

import (
	"context"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/auth"
)

// ChangePasswordCommand changes the acting user's own password
type ChangePasswordCommand struct {
	Actor       *access.Identity
	OldPassword string
	NewPassword string
}

type ChangePasswordHandler struct {
	repo domain.UserRepository
}

func NewChangePasswordHandler(repo domain.UserRepository) *ChangePasswordHandler {
	return &ChangePasswordHandler{repo: repo}
}

func (h *ChangePasswordHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := access.RequireSession(cmd.Actor); err != nil {
		return err
	}
	if cmd.OldPassword == "" {
		return apperror.Validation("Current password is required")
	}
	if err := validatePassword(cmd.NewPassword); err != nil {
		return err
	}

	user, err := h.repo.FindByID(ctx, cmd.Actor.UserID)
	if err != nil {
		return apperror.Internal(err, "failed to load user")
	}

	if !auth.CheckPassword(user.Password, cmd.OldPassword) {
		return apperror.Validation("Current password is incorrect")
	}

	hash, err := auth.HashPassword(cmd.NewPassword)
	if err != nil {
		return apperror.Internal(err, "failed to hash password")
	}
	user.Password = hash

	if err := h.repo.Update(ctx, user); err != nil {
		return apperror.Internal(err, "failed to update password")
	}
	return nil
}
