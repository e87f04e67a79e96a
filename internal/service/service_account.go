package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/osouza/go-user-accounts/internal/apperrors"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/internal/store"
	"github.com/osouza/go-user-accounts/internal/validators"
	"github.com/osouza/go-user-accounts/models"
)

// accountService is the concrete implementation of [AccountService].
// It combines the ordered validation rules, bcrypt credential handling and
// the user repository.
type accountService struct {
	users     store.UserRepository
	validator validators.UserValidator
	logger    *logger.Logger
}

// NewAccountService constructs an [AccountService] wired to the given
// repository and validator.
func NewAccountService(users store.UserRepository, validator validators.UserValidator, logger *logger.Logger) AccountService {
	return &accountService{
		users:     users,
		validator: validator,
		logger:    logger,
	}
}

// CreateUser validates the registration input, hashes the password and
// persists the account.
//
// The validation rules run in their fixed order (length, composition, date
// format, year range, email uniqueness); the first failure is returned
// unchanged. When two concurrent registrations with the same email both
// pass the pre-check, the database unique constraint catches the race and
// the violation is re-reported as the same validation failure, never as a
// raw database error.
func (a *accountService) CreateUser(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateNewUser(ctx, input); err != nil {
		log.Debug().Str("email", input.Email).Err(err).Msg("new user input rejected")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hash),
		BirthDate: input.BirthDate,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			// Lost the race against a concurrent registration.
			return models.User{}, apperrors.Validation(validators.MsgEmailTaken)
		}
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Msg("user created")
	return sanitize(created), nil
}

// Login authenticates an existing user with exactly one lookup by email.
//
// A missing account fails with a message naming the email; a password
// mismatch fails with the generic wrong-credentials message so that the
// response does not reveal which of the two was wrong.
func (a *accountService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, apperrors.Authentication(fmt.Sprintf("User with email %s not found", email))
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password)); err != nil {
		log.Debug().Int64("id", found.ID).Msg("wrong password")
		return models.User{}, apperrors.Authentication(MsgWrongCredentials)
	}

	return sanitize(found), nil
}

// GetUser looks an account up by primary key, including its addresses.
func (a *accountService) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := a.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, apperrors.NotFound(MsgUserNotFound)
		}
		log.Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return sanitize(found), nil
}

// ListUsers returns one pagination window plus boundary accounting.
//
// Both arguments are checked before any database read: a negative offset or
// a limit below one fails with a validation error whose detail names the
// offending argument. The window itself is ordered by name ascending and
// hasMoreUsers reports whether rows exist past it.
func (a *accountService) ListUsers(ctx context.Context, offset, limit int) (models.UserPage, error) {
	log := logger.FromContext(ctx)

	if offset < 0 {
		return models.UserPage{}, apperrors.Validation(apperrors.UnknownMessage, DetailInvalidOffset)
	}
	if limit < 1 {
		return models.UserPage{}, apperrors.Validation(apperrors.UnknownMessage, DetailInvalidLimit)
	}

	total, err := a.users.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.UserPage{}, fmt.Errorf("counting users failed: %w", err)
	}

	window, err := a.users.ListUsers(ctx, offset, limit)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return models.UserPage{}, fmt.Errorf("listing users failed: %w", err)
	}

	users := make([]models.User, 0, len(window))
	for _, u := range window {
		users = append(users, sanitize(u))
	}

	return models.UserPage{
		TotalCount:   total,
		Users:        users,
		HasMoreUsers: int64(offset+len(users)) < total,
	}, nil
}

// sanitize strips the password credential before the user leaves the
// service layer and guarantees a non-nil addresses collection.
func sanitize(u models.User) models.User {
	u.Password = ""
	if u.Addresses == nil {
		u.Addresses = []models.Address{}
	}
	return u
}
