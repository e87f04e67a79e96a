package service

import "errors"

var (
	// ErrTokenIsExpiredOrInvalid is the normalised verification failure
	// returned by [TokenService.Parse] for any expired, malformed or
	// wrongly signed token.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Client-facing messages of the credential and lookup flows.
const (
	// MsgWrongCredentials deliberately does not reveal which of email or
	// password was wrong.
	MsgWrongCredentials = "Wrong password and/or email"

	// MsgUserNotFound is reported when a lookup by id misses.
	MsgUserNotFound = "User not found"
)

// Details attached to pagination argument failures. The message itself stays
// generic; the detail distinguishes the complaint.
const (
	DetailInvalidOffset = "offset must be zero or a positive number"
	DetailInvalidLimit  = "limit must be a positive number"
)
