package command

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/config"
	"github.com/tair/inventory-tracker/pkg/logger"
)

// SeedSuperAdminHandler creates the first SUPER_ADMIN when no account exists yet.
type SeedSuperAdminHandler struct {
	repo domain.UserRepository
	seed config.SeedConfig
}

func NewSeedSuperAdminHandler(repo domain.UserRepository, cfg *config.Config) *SeedSuperAdminHandler {
	return &SeedSuperAdminHandler{repo: repo, seed: cfg.Seed}
}

// Handle reports whether an account was created.
func (h *SeedSuperAdminHandler) Handle(ctx context.Context) (bool, error) {
	if h.seed.Email == "" {
		return false, nil
	}

	count, err := h.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	email, err := normalizeEmail(h.seed.Email)
	if err != nil {
		return false, err
	}
	if err := validatePassword(h.seed.Password); err != nil {
		return false, err
	}

	hash, err := auth.HashPassword(h.seed.Password)
	if err != nil {
		return false, err
	}

	user := &domain.User{
		EmployeeID:   h.seed.EmployeeID,
		Username:     h.seed.Username,
		Email:        email,
		Password:     hash,
		JobStartDate: time.Now().UTC().Truncate(24 * time.Hour),
		IsActive:     true,
		Role:         access.RoleSuperAdmin,
		Permissions:  datatypes.NewJSONType(access.FullPermissions()),
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return false, err
	}

	logger.Info(ctx).Str("email", email).Msg("Seeded initial super admin")
	return true, nil
}
