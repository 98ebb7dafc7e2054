package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/internal/user/usecase/command"
	"github.com/tair/inventory-tracker/internal/user/usecase/query"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/web"
)

// UserHandler handles HTTP requests for sign-in and user accounts
type UserHandler struct {
	signInHandler         *command.SignInHandler
	createHandler         *command.CreateUserHandler
	updateHandler         *command.UpdateUserHandler
	changePasswordHandler *command.ChangePasswordHandler
	deleteHandler         *command.DeleteUserHandler

	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler

	metrics *web.Metrics
	authn   *web.Authenticator
	limiter *web.RateLimiter
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	signInHandler *command.SignInHandler,
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	changePasswordHandler *command.ChangePasswordHandler,
	deleteHandler *command.DeleteUserHandler,
	getUserHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	metrics *web.Metrics,
	authn *web.Authenticator,
	limiter *web.RateLimiter,
) *UserHandler {
	return &UserHandler{
		signInHandler:         signInHandler,
		createHandler:         createHandler,
		updateHandler:         updateHandler,
		changePasswordHandler: changePasswordHandler,
		deleteHandler:         deleteHandler,
		getUserHandler:        getUserHandler,
		listHandler:           listHandler,
		metrics:               metrics,
		authn:                 authn,
		limiter:               limiter,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	EmployeeID   string              `json:"employeeId"`
	Username     string              `json:"username"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	PhoneNumber  string              `json:"phoneNumber"`
	NIDNumber    string              `json:"nidNumber"`
	JobStartDate string              `json:"jobStartDate"`
	JobEndDate   string              `json:"jobEndDate"`
	IsActive     *bool               `json:"isActive"`
	Role         string              `json:"role"`
	Permissions  map[string][]string `json:"permissions"`
}

type updateUserRequest struct {
	EmployeeID   *string             `json:"employeeId"`
	Username     *string             `json:"username"`
	Email        *string             `json:"email"`
	Password     *string             `json:"password"`
	PhoneNumber  *string             `json:"phoneNumber"`
	NIDNumber    *string             `json:"nidNumber"`
	JobStartDate *string             `json:"jobStartDate"`
	JobEndDate   *string             `json:"jobEndDate"`
	IsActive     *bool               `json:"isActive"`
	Role         *string             `json:"role"`
	Permissions  map[string][]string `json:"permissions"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// SignIn handles POST /api/auth/sign-in
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) error {
	var req signInRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	result, err := h.signInHandler.Handle(r.Context(), command.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Signed in successfully", result)
	return nil
}

// GetProfile handles GET /api/users/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) error {
	actor := access.IdentityFrom(r.Context())
	if err := access.RequireSession(actor); err != nil {
		return err
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{Actor: actor, ID: actor.UserID})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", user)
	return nil
}

// UpdateProfile handles PUT /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	actor := access.IdentityFrom(r.Context())
	if err := access.RequireSession(actor); err != nil {
		return err
	}
	return h.update(w, r, actor.UserID)
}

// ChangePassword handles PUT /api/users/me/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) error {
	var req changePasswordRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	err := h.changePasswordHandler.Handle(r.Context(), command.ChangePasswordCommand{
		Actor:       access.IdentityFrom(r.Context()),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "Password changed successfully", nil)
	return nil
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.listHandler.Handle(r.Context(), query.ListUsersQuery{Actor: access.IdentityFrom(r.Context())})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", users)
	return nil
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{Actor: access.IdentityFrom(r.Context()), ID: id})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "", user)
	return nil
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	actor := access.IdentityFrom(r.Context())
	if err := access.Authorize(actor, access.FeatureUser, access.ActionCreate); err != nil {
		return err
	}

	var req createUserRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	start, err := parseDate(req.JobStartDate, "jobStartDate")
	if err != nil {
		return err
	}
	var end *time.Time
	if req.JobEndDate != "" {
		t, err := parseDate(req.JobEndDate, "jobEndDate")
		if err != nil {
			return err
		}
		end = &t
	}
	perms, err := access.ParsePermissions(req.Permissions)
	if err != nil {
		return apperror.Validation("%s", err.Error())
	}

	user, err := h.createHandler.Handle(r.Context(), command.CreateUserCommand{
		Actor:        actor,
		EmployeeID:   req.EmployeeID,
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		NIDNumber:    req.NIDNumber,
		JobStartDate: start,
		JobEndDate:   end,
		IsActive:     req.IsActive,
		Role:         access.Role(req.Role),
		Permissions:  perms,
	})
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusCreated, "User created successfully", user.ViewFor(actor))
	return nil
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}
	return h.update(w, r, id)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, id uint) error {
	actor := access.IdentityFrom(r.Context())
	if err := access.RequireSession(actor); err != nil {
		return err
	}

	var req updateUserRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		return err
	}

	cmd := command.UpdateUserCommand{
		Actor:       actor,
		ID:          id,
		EmployeeID:  req.EmployeeID,
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		NIDNumber:   req.NIDNumber,
		IsActive:    req.IsActive,
	}
	if req.JobStartDate != nil {
		t, err := parseDate(*req.JobStartDate, "jobStartDate")
		if err != nil {
			return err
		}
		cmd.JobStartDate = &t
	}
	if req.JobEndDate != nil {
		if *req.JobEndDate == "" {
			cmd.ClearJobEndDate = true
		} else {
			t, err := parseDate(*req.JobEndDate, "jobEndDate")
			if err != nil {
				return err
			}
			cmd.JobEndDate = &t
		}
	}
	if req.Role != nil {
		role := access.Role(*req.Role)
		cmd.Role = &role
	}
	if req.Permissions != nil {
		perms, err := access.ParsePermissions(req.Permissions)
		if err != nil {
			return apperror.Validation("%s", err.Error())
		}
		cmd.Permissions = &perms
	}

	user, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "User updated successfully", user.ViewFor(actor))
	return nil
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) error {
	id, err := web.PathID(r)
	if err != nil {
		return err
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteUserCommand{Actor: access.IdentityFrom(r.Context()), ID: id}); err != nil {
		return err
	}

	web.RespondJSON(w, http.StatusOK, "User deleted successfully", nil)
	return nil
}

func parseDate(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperror.Validation("%s is required", field)
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Validation("%s must be a date (YYYY-MM-DD)", field)
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	route := func(path, method string, fn web.HandlerFunc) {
		router.HandleFunc(path, h.metrics.Instrument(path, h.authn.Required(web.Handle(fn)))).Methods(method)
	}

	// Public routes
	router.HandleFunc("/api/auth/sign-in", h.metrics.Instrument("/api/auth/sign-in", h.limiter.Limit(web.Handle(h.SignIn)))).Methods(http.MethodPost)

	// Authenticated user routes
	route("/api/users/me", http.MethodGet, h.GetProfile)
	route("/api/users/me", http.MethodPut, h.UpdateProfile)
	route("/api/users/me/password", http.MethodPut, h.ChangePassword)

	route("/api/users", http.MethodGet, h.ListUsers)
	route("/api/users", http.MethodPost, h.CreateUser)
	route("/api/users/{id:[0-9]+}", http.MethodGet, h.GetUser)
	route("/api/users/{id:[0-9]+}", http.MethodPut, h.UpdateUser)
	route("/api/users/{id:[0-9]+}", http.MethodDelete, h.DeleteUser)
}
