package command

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/catalog/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
)

// CreateServiceCommand represents the command to create a service
type CreateServiceCommand struct {
	Actor         *access.Identity
	Name          string
	Description   string
	ServiceCharge decimal.Decimal
}

// CreateServiceHandler handles service creation command
type CreateServiceHandler struct {
	repo domain.ServiceRepository
}

// NewCreateServiceHandler creates a new create service handler
func NewCreateServiceHandler(repo domain.ServiceRepository) *CreateServiceHandler {
	return &CreateServiceHandler{repo: repo}
}

// Handle executes the create service command
func (h *CreateServiceHandler) Handle(ctx context.Context, cmd CreateServiceCommand) (*domain.Service, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureService, access.ActionCreate); err != nil {
		return nil, err
	}

	name, err := requiredName(cmd.Name, "Service")
	if err != nil {
		return nil, err
	}
	if cmd.ServiceCharge.IsNegative() {
		return nil, apperror.Validation("Service charge cannot be negative")
	}

	if taken, err := h.repo.ExistsByName(ctx, name, 0); err != nil {
		return nil, apperror.Internal(err, "failed to check service name")
	} else if taken {
		return nil, apperror.Conflict("A service with this name already exists")
	}

	service := &domain.Service{
		Name:          name,
		Description:   strings.TrimSpace(cmd.Description),
		ServiceCharge: cmd.ServiceCharge,
		CreatedByID:   cmd.Actor.UserID,
	}
	if err := h.repo.Create(ctx, service); err != nil {
		return nil, apperror.Internal(err, "failed to create service")
	}

	return service, nil
}
