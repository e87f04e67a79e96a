package models

import "time"

// AuthContext is the per-request authentication state derived from the
// Authorization header. It is produced once for every incoming operation,
// passed read-only to resolvers, and never persisted or reused across
// requests.
//
// The three possible states are:
//   - no attempt: TokenPresented == false (header absent or empty);
//   - failed attempt: TokenPresented == true, IsValidToken == false
//     (signature mismatch, expiry passed, malformed token);
//   - authenticated: TokenPresented == true, IsValidToken == true and the
//     decoded identity fields are populated.
type AuthContext struct {
	// UserID is the decoded identity of the caller. Zero when the token is
	// absent or invalid.
	UserID int64

	// Email is the account email carried in the token, when present.
	Email string

	// IssuedAt and ExpiresAt mirror the iat/exp claims of a valid token.
	IssuedAt  time.Time
	ExpiresAt time.Time

	// TokenPresented reports whether the request carried any token at all.
	TokenPresented bool

	// IsValidToken reports whether the presented token passed signature and
	// expiry verification.
	IsValidToken bool
}

// Authenticated reports whether the request carries a verified identity.
// Operations that require authentication must check this and fail with a
// 401 when it is false.
func (a AuthContext) Authenticated() bool {
	return a.TokenPresented && a.IsValidToken && a.UserID != 0
}
