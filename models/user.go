package models

// User represents an account entity used for authentication and lookup
// operations. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Name is the display name of the user. Listings are ordered by it.
	Name string `json:"name"`

	// Email is the globally unique contact address of the user.
	// It doubles as the login identifier.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It MUST be a derived value, never plaintext, and is never serialized.
	Password string `json:"-"`

	// BirthDate is the user's birth date in DD-MM-YYYY form.
	BirthDate string `json:"birthDate"`

	// Addresses is the collection of addresses owned by the user.
	// Empty, never nil, when the user has no addresses.
	Addresses []Address `json:"addresses"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInput carries the raw fields of a create-user request before
// validation and password hashing.
type UserInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	BirthDate string `json:"birthDate"`
}
