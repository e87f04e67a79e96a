package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (name, email, password, birth_date)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, password, birth_date;`

	findUserByID = `SELECT id, name, email, password, birth_date
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT id, name, email, password, birth_date
    FROM users
    WHERE email = $1;`

	findAddressesByUserID = `SELECT id, user_id, zip_code, street, street_number, city, state, complement, neighborhood
    FROM addresses
    WHERE user_id = $1
    ORDER BY id;`

	createAddress = `INSERT INTO addresses (user_id, zip_code, street, street_number, city, state, complement, neighborhood)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id;`
)

// psql is the squirrel builder configured for PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column order scanned into models.User.
var userColumns = []string{"id", "name", "email", "password", "birth_date"}

// addressColumns is the canonical column order scanned into models.Address.
var addressColumns = []string{"id", "user_id", "zip_code", "street", "street_number", "city", "state", "complement", "neighborhood"}

// buildListUsersQuery builds the pagination window query. Ordering is by
// lower-cased name for a deterministic case-insensitive sort, with name and
// id as tie breakers so that concatenating pages reproduces the full set
// without duplicates or omissions.
func buildListUsersQuery(offset, limit int) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		OrderBy("LOWER(name)", "name", "id").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
}

// buildCountUsersQuery builds the total-row-count query used for the
// pagination boundary accounting.
func buildCountUsersQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("users").
		ToSql()
}

// buildAddressesForUsersQuery builds the query attaching addresses to a
// fetched window of users in one round trip.
func buildAddressesForUsersQuery(userIDs []int64) (string, []any, error) {
	return psql.
		Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"user_id": userIDs}).
		OrderBy("user_id", "id").
		ToSql()
}
