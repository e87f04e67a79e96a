package store

import (
	"context"

	"github.com/osouza/go-user-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for the User entity and its
// related addresses. The database's unique constraint on users.email is the
// final authority for email uniqueness; CreateUser surfaces a violation as
// [ErrEmailAlreadyExists] so callers can re-report it as a validation
// failure instead of a raw database error.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID looks a user up by primary key, including the related
	// addresses. Returns ErrNoUserWasFound when the id does not exist.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindUserByEmail looks a user up by its unique email, without
	// addresses. Returns ErrNoUserWasFound when no such email is registered.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers fetches a window of up to limit users starting at offset,
	// ordered by name ascending (case-insensitive, ties broken by name then
	// id), including addresses.
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, error)

	// CountUsers returns the total number of users, independent of any
	// pagination window.
	CountUsers(ctx context.Context) (int64, error)

	// CreateAddress persists a new address owned by an existing user.
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)
}
