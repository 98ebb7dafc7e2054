package command

import (
	"context"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/auth"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Actor        *access.Identity
	EmployeeID   string
	Username     string
	Email        string
	Password     string
	PhoneNumber  string
	NIDNumber    string
	JobStartDate time.Time
	JobEndDate   *time.Time
	IsActive     *bool
	Role         access.Role
	Permissions  access.PermissionSet
}

// CreateUserHandler handles user creation command
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	if err := access.Authorize(cmd.Actor, access.FeatureUser, access.ActionCreate); err != nil {
		return nil, err
	}

	employeeID, err := required(cmd.EmployeeID, "Employee ID")
	if err != nil {
		return nil, err
	}
	username, err := required(cmd.Username, "Username")
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(cmd.Password); err != nil {
		return nil, err
	}
	if !cmd.Role.Valid() {
		return nil, apperror.Validation("Role must be SUPER_ADMIN or NORMAL_ADMIN")
	}
	if cmd.JobStartDate.IsZero() {
		return nil, apperror.Validation("Job start date is required")
	}
	if cmd.JobEndDate != nil && cmd.JobEndDate.Before(cmd.JobStartDate) {
		return nil, apperror.Validation("Job end date cannot be before the start date")
	}

	if taken, err := h.repo.ExistsByEmail(ctx, email, 0); err != nil {
		return nil, apperror.Internal(err, "failed to check email uniqueness")
	} else if taken {
		return nil, apperror.Conflict("A user with this email already exists")
	}
	if taken, err := h.repo.ExistsByEmployeeID(ctx, employeeID, 0); err != nil {
		return nil, apperror.Internal(err, "failed to check employee id uniqueness")
	} else if taken {
		return nil, apperror.Conflict("A user with this employee ID already exists")
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, apperror.Internal(err, "failed to hash password")
	}

	active := true
	if cmd.IsActive != nil {
		active = *cmd.IsActive
	}

	perms := cmd.Permissions
	if cmd.Role == access.RoleSuperAdmin {
		perms = access.FullPermissions()
	}

	user := &domain.User{
		EmployeeID:   employeeID,
		Username:     username,
		Email:        email,
		Password:     hash,
		PhoneNumber:  strings.TrimSpace(cmd.PhoneNumber),
		NIDNumber:    strings.TrimSpace(cmd.NIDNumber),
		JobStartDate: cmd.JobStartDate,
		JobEndDate:   cmd.JobEndDate,
		IsActive:     active,
		Role:         cmd.Role,
		Permissions:  datatypes.NewJSONType(perms),
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err, "failed to create user")
	}

	return user, nil
}
