// Package service contains the application's business logic: token
// lifecycle, credential verification, account creation and the paginated
// listing. Services depend on repository interfaces and are safe for
// concurrent use; all state is read-only after construction.
package service

import (
	"github.com/osouza/go-user-accounts/internal/config"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/internal/store"
	"github.com/osouza/go-user-accounts/internal/validators"
)

// Services aggregates every service of the application. It is built once at
// startup and injected into the GraphQL resolvers.
type Services struct {
	Tokens   TokenService
	Accounts AccountService
}

// NewServices wires all services over the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	validator := validators.NewUserValidator(storages.Users)

	return &Services{
		Tokens:   NewTokenService(cfg, logger),
		Accounts: NewAccountService(storages.Users, validator, logger),
	}
}
