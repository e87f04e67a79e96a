package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osouza/go-user-accounts/internal/config"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/models"
)

func testTokenService(t *testing.T, cfg config.App) TokenService {
	t.Helper()
	log := logger.Nop()
	return NewTokenService(cfg, log)
}

func defaultAppConfig() config.App {
	return config.App{
		TokenSignKey:          "test-sign-key",
		TokenIssuer:           "accounts-test",
		TokenDuration:         time.Hour,
		TokenRememberDuration: 168 * time.Hour,
	}
}

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := testTokenService(t, defaultAppConfig())
	user := models.User{ID: 42, Email: "user@example.com"}

	issued, err := svc.Issue(context.Background(), user, false)
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)
	assert.Equal(t, int64(42), issued.UserID)

	parsed, err := svc.Parse(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "user@example.com", parsed.Email)
	assert.Equal(t, "accounts-test", parsed.Issuer)
}

func TestTokenService_RememberMeExtendsLifetime(t *testing.T) {
	svc := testTokenService(t, defaultAppConfig())
	user := models.User{ID: 1, Email: "user@example.com"}

	short, err := svc.Issue(context.Background(), user, false)
	require.NoError(t, err)
	long, err := svc.Issue(context.Background(), user, true)
	require.NoError(t, err)

	shortLife := short.ExpiresAt.Sub(short.IssuedAt.Time)
	longLife := long.ExpiresAt.Sub(long.IssuedAt.Time)
	assert.Equal(t, time.Hour, shortLife)
	assert.Equal(t, 168*time.Hour, longLife)
}

func TestTokenService_ParseRejectsGarbage(t *testing.T) {
	svc := testTokenService(t, defaultAppConfig())

	for _, raw := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := svc.Parse(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestTokenService_ParseRejectsWrongSignKey(t *testing.T) {
	issuerCfg := defaultAppConfig()
	issued, err := testTokenService(t, issuerCfg).Issue(context.Background(), models.User{ID: 7, Email: "a@b.c"}, false)
	require.NoError(t, err)

	otherCfg := issuerCfg
	otherCfg.TokenSignKey = "another-key"

	_, err = testTokenService(t, otherCfg).Parse(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestTokenService_ParseRejectsWrongIssuer(t *testing.T) {
	issuerCfg := defaultAppConfig()
	issued, err := testTokenService(t, issuerCfg).Issue(context.Background(), models.User{ID: 7, Email: "a@b.c"}, false)
	require.NoError(t, err)

	otherCfg := issuerCfg
	otherCfg.TokenIssuer = "someone-else"

	_, err = testTokenService(t, otherCfg).Parse(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestTokenService_ParseRejectsExpiredToken(t *testing.T) {
	cfg := defaultAppConfig()
	cfg.TokenDuration = -time.Minute
	svc := testTokenService(t, cfg)

	issued, err := svc.Issue(context.Background(), models.User{ID: 7, Email: "a@b.c"}, false)
	require.NoError(t, err)

	_, err = svc.Parse(context.Background(), issued.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
