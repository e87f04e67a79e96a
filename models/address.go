package models

// Address is a postal address owned by exactly one user. Addresses are
// created during seeding or fixtures and read as a nested collection under
// a user; the API never updates or deletes them.
type Address struct {
	// ID is the unique identifier of the address, assigned by the database.
	ID int64 `json:"-"`

	// UserID references the owning user. Deleting the user cascades.
	UserID int64 `json:"-"`

	ZipCode      int     `json:"zipCode"`
	Street       string  `json:"street"`
	StreetNumber int     `json:"streetNumber"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
