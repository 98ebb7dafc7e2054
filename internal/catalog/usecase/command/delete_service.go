package command

import (
	"context"
	"errors"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// DeleteServiceCommand represents the command to delete a service
type DeleteServiceCommand struct {
	Actor *access.Identity
	ID    uint
}

// DeleteServiceHandler handles service deletion command
type DeleteServiceHandler struct {
	repo domain.ServiceRepository
}

// NewDeleteServiceHandler creates a new delete service handler
func NewDeleteServiceHandler(repo domain.ServiceRepository) *DeleteServiceHandler {
	return &DeleteServiceHandler{repo: repo}
}

// Handle executes the delete service command
func (h *DeleteServiceHandler) Handle(ctx context.Context, cmd DeleteServiceCommand) error {
	if err := access.Authorize(cmd.Actor, access.FeatureService, access.ActionDelete); err != nil {
		return err
	}

	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return apperror.NotFound("Service not found")
		}
		return apperror.Internal(err, "failed to load service")
	}

	products, err := h.repo.CountProducts(ctx, cmd.ID)
	if err != nil {
		return apperror.Internal(err, "failed to count products of service")
	}
	if products > 0 {
		return apperror.Conflict("Cannot delete a service that still has products")
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return apperror.NotFound("Service not found")
		}
		return apperror.Internal(err, "failed to delete service")
	}
	return nil
}
