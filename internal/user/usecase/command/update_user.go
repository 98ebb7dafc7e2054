package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/auth"
)

// UpdateUserCommand represents a partial update; nil fields are left unchanged.
type UpdateUserCommand struct {
	Actor           *access.Identity
	ID              uint
	EmployeeID      *string
	Username        *string
	Email           *string
	Password        *string
	PhoneNumber     *string
	NIDNumber       *string
	JobStartDate    *time.Time
	JobEndDate      *time.Time
	ClearJobEndDate bool
	IsActive        *bool
	Role            *access.Role
	Permissions     *access.PermissionSet
}

// touchesRestrictedFields reports whether anything beyond phone and NID is set.
func (c UpdateUserCommand) touchesRestrictedFields() bool {
	return c.EmployeeID != nil || c.Username != nil || c.Email != nil || c.Password != nil ||
		c.JobStartDate != nil || c.JobEndDate != nil || c.ClearJobEndDate ||
		c.IsActive != nil || c.Role != nil || c.Permissions != nil
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command.
//
// A SUPER_ADMIN may change every field of any account but cannot demote or
// deactivate themself. Anyone else may only change the phone and NID numbers
// of their own account.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	if err := access.RequireSession(cmd.Actor); err != nil {
		return nil, err
	}

	self := cmd.Actor.UserID == cmd.ID
	if !cmd.Actor.IsSuperAdmin() {
		if !self {
			return nil, apperror.Unauthorized("You can only update your own profile")
		}
		if cmd.touchesRestrictedFields() {
			return nil, apperror.Unauthorized("You can only change your phone number and NID number")
		}
	}

	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err, "failed to load user")
	}

	if self {
		if cmd.Role != nil && *cmd.Role != access.RoleSuperAdmin && user.IsSuperAdmin() {
			return nil, apperror.Validation("You cannot remove your own super admin role")
		}
		if cmd.IsActive != nil && !*cmd.IsActive {
			return nil, apperror.Validation("You cannot deactivate your own account")
		}
	}

	if cmd.EmployeeID != nil {
		employeeID, err := required(*cmd.EmployeeID, "Employee ID")
		if err != nil {
			return nil, err
		}
		if taken, err := h.repo.ExistsByEmployeeID(ctx, employeeID, user.ID); err != nil {
			return nil, apperror.Internal(err, "failed to check employee id uniqueness")
		} else if taken {
			return nil, apperror.Conflict("A user with this employee ID already exists")
		}
		user.EmployeeID = employeeID
	}
	if cmd.Username != nil {
		username, err := required(*cmd.Username, "Username")
		if err != nil {
			return nil, err
		}
		user.Username = username
	}
	if cmd.Email != nil {
		email, err := normalizeEmail(*cmd.Email)
		if err != nil {
			return nil, err
		}
		if taken, err := h.repo.ExistsByEmail(ctx, email, user.ID); err != nil {
			return nil, apperror.Internal(err, "failed to check email uniqueness")
		} else if taken {
			return nil, apperror.Conflict("A user with this email already exists")
		}
		user.Email = email
	}
	if cmd.Password != nil {
		if err := validatePassword(*cmd.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*cmd.Password)
		if err != nil {
			return nil, apperror.Internal(err, "failed to hash password")
		}
		user.Password = hash
	}
	if cmd.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*cmd.PhoneNumber)
	}
	if cmd.NIDNumber != nil {
		user.NIDNumber = strings.TrimSpace(*cmd.NIDNumber)
	}
	if cmd.JobStartDate != nil {
		user.JobStartDate = *cmd.JobStartDate
	}
	if cmd.ClearJobEndDate {
		user.JobEndDate = nil
	} else if cmd.JobEndDate != nil {
		end := *cmd.JobEndDate
		user.JobEndDate = &end
	}
	if user.JobEndDate != nil && user.JobEndDate.Before(user.JobStartDate) {
		return nil, apperror.Validation("Job end date cannot be before the start date")
	}
	if cmd.IsActive != nil {
		user.IsActive = *cmd.IsActive
	}
	if cmd.Role != nil {
		if !cmd.Role.Valid() {
			return nil, apperror.Validation("Role must be SUPER_ADMIN or NORMAL_ADMIN")
		}
		user.Role = *cmd.Role
	}
	if cmd.Permissions != nil {
		user.Permissions = datatypes.NewJSONType(*cmd.Permissions)
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, apperror.Internal(err, "failed to update user")
	}

	return user, nil
}
