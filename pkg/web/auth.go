package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/inventory-tracker/internal/access"
	"github.com/tair/inventory-tracker/pkg/apperror"
	"github.com/tair/inventory-tracker/pkg/auth"
)

// IdentityResolver loads the acting identity for a verified token subject.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID uint) (*access.Identity, error)
}

// Authenticator turns bearer tokens into request identities.
type Authenticator struct {
	tokens   *auth.TokenManager
	resolver IdentityResolver
}

func NewAuthenticator(tokens *auth.TokenManager, resolver IdentityResolver) *Authenticator {
	return &Authenticator{tokens: tokens, resolver: resolver}
}

// Required rejects requests without a valid session.
func (a *Authenticator) Required(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			RespondError(w, r, apperror.Unauthenticated("Authorization header required"))
			return
		}

		id, err := a.identify(r.Context(), header)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		if holder, ok := r.Context().Value(identityHolderKey{}).(*identityHolder); ok {
			holder.id = id
		}
		next.ServeHTTP(w, r.WithContext(access.WithIdentity(r.Context(), id)))
	}
}

func (a *Authenticator) identify(ctx context.Context, header string) (*access.Identity, error) {
	// Extract token from "Bearer <token>"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, apperror.Unauthenticated("Invalid authorization header format")
	}

	claims, err := a.tokens.ValidateToken(parts[1])
	if err != nil {
		return nil, apperror.Unauthenticated("Invalid or expired token")
	}

	return a.resolver.ResolveIdentity(ctx, claims.UserID)
}

type identityHolderKey struct{}

func withIdentityHolder(ctx context.Context, holder *identityHolder) context.Context {
	return context.WithValue(ctx, identityHolderKey{}, holder)
}
