package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table and the
// related "addresses" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Password, user.BirthDate)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: query failed")
		return models.User{}, r.mapCreateError(err)
	}

	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Password, &created.BirthDate); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, r.mapCreateError(err)
	}

	created.Addresses = []models.Address{}
	return created, nil
}

// mapCreateError normalises INSERT failures: the unique-constraint violation
// on users.email becomes [ErrEmailAlreadyExists], everything else is wrapped.
func (r *userRepository) mapCreateError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrEmailAlreadyExists
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

// FindUserByID retrieves a user record by primary key, including its
// related addresses.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, id)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Password, &found.BirthDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	addresses, err := r.findAddresses(ctx, found.ID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: fetching addresses")
		return models.User{}, err
	}
	found.Addresses = addresses

	return found, nil
}

// FindUserByEmail retrieves a user record whose email matches the one
// provided. Addresses are not fetched: the callers of this method (login
// and the email-uniqueness pre-check) only need the account row.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Password, &found.BirthDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found.Addresses = []models.Address{}
	return found, nil
}

// ListUsers fetches one pagination window ordered by name ascending and
// attaches the addresses of every user in the window with a single extra
// query.
func (r *userRepository) ListUsers(ctx context.Context, offset, limit int) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.BirthDate); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		u.Addresses = []models.Address{}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := r.attachAddresses(ctx, users); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: fetching addresses")
		return nil, err
	}

	return users, nil
}

// CountUsers returns the total number of rows in the users table.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: executing query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// CreateAddress persists a new address row owned by an existing user and
// returns it with the server-assigned ID.
func (r *userRepository) CreateAddress(ctx context.Context, address models.Address) (models.Address, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAddress,
		address.UserID, address.ZipCode, address.Street, address.StreetNumber,
		address.City, address.State, address.Complement, address.Neighborhood)
	if err := row.Scan(&address.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateAddress").Msg("error: query failed")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return address, nil
}

// findAddresses fetches the addresses of a single user ordered by id.
func (r *userRepository) findAddresses(ctx context.Context, userID int64) ([]models.Address, error) {
	rows, err := r.db.QueryContext(ctx, findAddressesByUserID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanAddresses(rows)
}

// attachAddresses populates the Addresses field of every user in the window
// with a single IN query over the window's user ids.
func (r *userRepository) attachAddresses(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(users))
	index := make(map[int64]int, len(users))
	for i, u := range users {
		ids = append(ids, u.ID)
		index[u.ID] = i
	}

	query, args, err := buildAddressesForUsersQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses, err := scanAddresses(rows)
	if err != nil {
		return err
	}

	for _, a := range addresses {
		if i, ok := index[a.UserID]; ok {
			users[i].Addresses = append(users[i].Addresses, a)
		}
	}

	return nil
}

// scanAddresses drains rows into address models. Complement and
// neighborhood columns are nullable and scan into pointer fields.
func scanAddresses(rows *sql.Rows) ([]models.Address, error) {
	addresses := make([]models.Address, 0)
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.ZipCode, &a.Street, &a.StreetNumber,
			&a.City, &a.State, &a.Complement, &a.Neighborhood); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return addresses, nil
}
