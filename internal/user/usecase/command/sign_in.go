package command

import (
	"context"
	"errors"
	"strings"

	"github.com/tair/inventory-tracker/internal/user/domain"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/auth"
)

// SignInCommand represents an email and password sign-in
type SignInCommand struct {
	Email    string
	Password string
}

// SignInResult carries the session token and the signed-in user
type SignInResult struct {
	Token string          `json:"token"`
	User  domain.UserView `json:"user"`
}

// SignInHandler handles sign-in
type SignInHandler struct {
	repo   domain.UserRepository
	tokens *auth.TokenManager
}

// NewSignInHandler creates a new sign-in handler
func NewSignInHandler(repo domain.UserRepository, tokens *auth.TokenManager) *SignInHandler {
	return &SignInHandler{repo: repo, tokens: tokens}
}

// Handle executes the sign-in command
func (h *SignInHandler) Handle(ctx context.Context, cmd SignInCommand) (*SignInResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	user, err := h.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.Unauthenticated("Invalid email or password")
		}
		return nil, apperror.Internal(err, "failed to load user for sign-in")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, apperror.Unauthenticated("Invalid email or password")
	}

	if !user.IsActive {
		return nil, apperror.Unauthenticated("Account is deactivated")
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err, "failed to generate token")
	}

	return &SignInResult{
		Token: token,
		User:  user.ViewFor(user.Identity()),
	}, nil
}
