package command

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// UpdateServiceCommand changes the fields that are set
type UpdateServiceCommand struct {
	Actor         *access.Identity
	ID            uint
	Name          *string
	Description   *string
	ServiceCharge *decimal.Decimal
}

// UpdateServiceHandler handles service update command
type UpdateServiceHandler struct {
	repo domain.ServiceRepository
}

// NewUpdateServiceHandler creates a new update service handler
func NewUpdateServiceHandler(repo domain.ServiceRepository) *UpdateServiceHandler {
	return &UpdateServiceHandler{repo: repo}
}

// Handle executes the update service command
func (h *UpdateServiceHandler) Handle(ctx context.Context, cmd UpdateServiceCommand) (*domain.Service, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureService, access.ActionEdit); err != nil {
		return nil, err
	}

	service, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return nil, apperror.NotFound("Service not found")
		}
		return nil, apperror.Internal(err, "failed to load service")
	}

	if cmd.Name != nil {
		name, err := requiredName(*cmd.Name, "Service")
		if err != nil {
			return nil, err
		}
		if taken, err := h.repo.ExistsByName(ctx, name, service.ID); err != nil {
			return nil, apperror.Internal(err, "failed to check service name")
		} else if taken {
			return nil, apperror.Conflict("A service with this name already exists")
		}
		service.Name = name
	}
	if cmd.Description != nil {
		service.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.ServiceCharge != nil {
		if cmd.ServiceCharge.IsNegative() {
			return nil, apperror.Validation("Service charge cannot be negative")
		}
		service.ServiceCharge = *cmd.ServiceCharge
	}

	if err := h.repo.Update(ctx, service); err != nil {
		return nil, apperror.Internal(err, "failed to update service")
	}

	return service, nil
}
