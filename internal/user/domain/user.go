package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"

	"github.com/tair/inventory-tracker/internal/access"
)

var ErrUserNotFound = errors.New("user not found")

// User represents an administrator account
type User struct {
	ID           uint                                     `json:"id" gorm:"primaryKey"`
	EmployeeID   string                                   `json:"employeeId" gorm:"size:64;uniqueIndex;not null"`
	Username     string                                   `json:"username" gorm:"size:128;not null"`
	Email        string                                   `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password     string                                   `json:"-" gorm:"not null"`
	PhoneNumber  string                                   `json:"phoneNumber" gorm:"size:32"`
	NIDNumber    string                                   `json:"nidNumber" gorm:"size:64"`
	JobStartDate time.Time                                `json:"jobStartDate"`
	JobEndDate   *time.Time                               `json:"jobEndDate,omitempty"`
	IsActive     bool                                     `json:"isActive" gorm:"not null"`
	Role         access.Role                              `json:"role" gorm:"size:20;not null"`
	Permissions  datatypes.JSONType[access.PermissionSet] `json:"permissions"`
	CreatedAt    time.Time                                `json:"createdAt"`
	UpdatedAt    time.Time                                `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == access.RoleSuperAdmin
}

// Identity converts the account into the value carried through a request.
func (u *User) Identity() *access.Identity {
	return &access.Identity{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions.Data(),
	}
}

// UserView is the API representation of a user.
// Permissions are only present when the viewer may see them.
type UserView struct {
	ID           uint                  `json:"id"`
	EmployeeID   string                `json:"employeeId"`
	Username     string                `json:"username"`
	Email        string                `json:"email"`
	PhoneNumber  string                `json:"phoneNumber"`
	NIDNumber    string                `json:"nidNumber"`
	JobStartDate time.Time             `json:"jobStartDate"`
	JobEndDate   *time.Time            `json:"jobEndDate,omitempty"`
	IsActive     bool                  `json:"isActive"`
	Role         access.Role           `json:"role"`
	Permissions  *access.PermissionSet `json:"permissions,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// ViewFor shapes u for viewer: only super admins and the user themself see permissions.
func (u *User) ViewFor(viewer *access.Identity) UserView {
	v := UserView{
		ID:           u.ID,
		EmployeeID:   u.EmployeeID,
		Username:     u.Username,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		NIDNumber:    u.NIDNumber,
		JobStartDate: u.JobStartDate,
		JobEndDate:   u.JobEndDate,
		IsActive:     u.IsActive,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if viewer.IsSuperAdmin() || (viewer != nil && viewer.UserID == u.ID) {
		perms := u.Permissions.Data()
		v.Permissions = &perms
	}
	return v
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID uint) (bool, error)
	FindAll(ctx context.Context, activeOnly bool) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountAuthoredRecords(ctx context.Context, id uint) (int64, error)
}
