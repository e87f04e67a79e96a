package service

import (
	"context"

	"github.com/osouza/go-user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies the signed, time-limited identity tokens
// used for request authentication. Tokens are stateless: validity is purely
// a function of signature and expiry, there is no revocation list.
type TokenService interface {
	// Issue signs a token for user. With rememberMe the token lives for the
	// configured long duration (7 days by default), otherwise for the short
	// one (1 hour by default).
	Issue(ctx context.Context, user models.User, rememberMe bool) (models.Token, error)

	// Parse verifies signature, expiry and issuer of a raw token string and
	// returns the decoded token. Any verification failure is normalised to
	// [ErrTokenIsExpiredOrInvalid]; Parse never panics and never lets
	// low-level JWT errors escape.
	Parse(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService orchestrates validation, credential handling and
// repository access for every user-facing operation. All failures it
// reports to callers are tagged [apperrors.Error] values ready for the
// boundary formatter.
type AccountService interface {
	// CreateUser validates the input (ordered rules, first failure wins),
	// hashes the password and persists the account. A uniqueness race at
	// the database level is re-reported as the same validation failure as
	// the pre-check.
	CreateUser(ctx context.Context, input models.UserInput) (models.User, error)

	// Login verifies the credentials with exactly one lookup by email and
	// returns the account with the password credential stripped.
	Login(ctx context.Context, email, password string) (models.User, error)

	// GetUser looks an account up by primary key, including addresses.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns one window of the name-ordered listing together
	// with the total count and the has-more flag. Offset and limit are
	// validated before any database read.
	ListUsers(ctx context.Context, offset, limit int) (models.UserPage, error)
}
