package store

import "github.com/osouza/go-user-accounts/internal/logger"

// Storages aggregates every repository of the application. It is built once
// at startup and injected into the service layer; no repository is ever
// accessed through a package-level handle.
type Storages struct {
	Users UserRepository
}

// NewStorages constructs all repositories over the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Users: NewUserRepository(db, logger),
	}
}
