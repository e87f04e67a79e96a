package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osouza/go-user-accounts/internal/config"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/models"
)

// tokenService is the concrete implementation of [TokenService]. It signs
// tokens with HMAC-SHA256 using a configuration-supplied secret and embeds
// the user id as the subject claim plus the account email.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token. Tokens
	// whose issuer does not match are rejected during parsing.
	issuer string

	// shortDuration is the token lifetime for ordinary logins.
	shortDuration time.Duration

	// longDuration is the token lifetime for rememberMe logins.
	longDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the application
// configuration.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		shortDuration: cfg.TokenDuration,
		longDuration:  cfg.TokenRememberDuration,
		logger:        logger,
	}
}

// Issue signs an HMAC-SHA256 JWT for the given user.
//
// The token carries the following claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the lifetime selected by
//     rememberMe
//   - email: the account email
func (s *tokenService) Issue(ctx context.Context, user models.User, rememberMe bool) (models.Token, error) {
	duration := s.shortDuration
	if rememberMe {
		duration = s.longDuration
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.signKey))
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	claims.Token = token
	claims.SignedString = signed
	claims.UserID = user.ID

	return *claims, nil
}

// Parse validates and decodes a raw token string.
//
// Validation covers the signature (HMAC with the configured sign key), the
// expiry claim and the issuer claim. Any failure is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers never need to inspect
// low-level JWT errors.
func (s *tokenService) Parse(ctx context.Context, tokenString string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.signKey), nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.UserID = userID

	return *claims, nil
}
