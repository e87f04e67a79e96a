package graph

import (
	"context"
	"strings"

	"github.com/osouza/go-user-accounts/internal/service"
	"github.com/osouza/go-user-accounts/models"
)

type authContextKey struct{}

// WithAuthContext stores the per-request authentication context.
func WithAuthContext(ctx context.Context, auth models.AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// AuthFromContext retrieves the authentication context stored by
// [WithAuthContext]. A context without one yields the zero value, which is
// never authenticated.
func AuthFromContext(ctx context.Context) models.AuthContext {
	auth, _ := ctx.Value(authContextKey{}).(models.AuthContext)
	return auth
}

// BuildAuthContext converts a raw Authorization header value into an
// authentication context.
//
// An absent header produces a context with no authentication attempt
// recorded. A present but unverifiable token produces a context flagged as
// invalid; verification failures never propagate past this function. Only a
// token with a valid signature, issuer and expiry yields an authenticated
// context.
//
// The header is expected to carry the raw token; a conventional
// "Bearer " prefix is tolerated and stripped.
func BuildAuthContext(ctx context.Context, tokens service.TokenService, authHeader string) models.AuthContext {
	if authHeader == "" {
		return models.AuthContext{}
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := tokens.Parse(ctx, tokenString)
	if err != nil {
		return models.AuthContext{TokenPresented: true, IsValidToken: false}
	}

	auth := models.AuthContext{
		UserID:         token.UserID,
		Email:          token.Email,
		TokenPresented: true,
		IsValidToken:   true,
	}
	if token.IssuedAt != nil {
		auth.IssuedAt = token.IssuedAt.Time
	}
	if token.ExpiresAt != nil {
		auth.ExpiresAt = token.ExpiresAt.Time
	}

	return auth
}
