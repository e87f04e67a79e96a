package models

// UserPage is one window of the name-ordered user listing.
type UserPage struct {
	// TotalCount is the total number of users in the database, independent
	// of the pagination window.
	TotalCount int64 `json:"totalCount"`

	// Users holds up to `limit` users starting at `offset`, ordered by name
	// ascending.
	Users []User `json:"users"`

	// HasMoreUsers reports whether rows exist past the returned window:
	// offset + len(Users) < TotalCount.
	HasMoreUsers bool `json:"hasMoreUsers"`
}
