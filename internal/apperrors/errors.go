// Package apperrors defines the single tagged error type used by every
// domain operation and the mapping of arbitrary errors into the stable
// client-facing shape {code, message, additionalInfo}.
//
// All domain failures — validation, authentication, authorization, not-found —
// are values of [*Error]. The GraphQL boundary formatter rewrites every error
// leaving an operation into this shape, defaulting anything unclassified to a
// generic message so that internals are never leaked to clients.
package apperrors

import "errors"

// UnknownMessage is the generic client-facing message used for any error
// that is not a tagged [*Error].
const UnknownMessage = "Something went wrong, try again"

// Error is the tagged domain error carried through resolvers to the
// boundary formatter. Code is the client-facing numeric code, not an HTTP
// transport status: GraphQL responses are always written with HTTP 200.
type Error struct {
	Code           int    `json:"code"`
	Message        string `json:"message"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Validation reports malformed or duplicate input (code 400). The optional
// detail becomes the additionalInfo field of the wire shape.
func Validation(message string, detail ...string) *Error {
	e := &Error{Code: 400, Message: message}
	if len(detail) > 0 {
		e.AdditionalInfo = detail[0]
	}
	return e
}

// Authentication reports bad login credentials (code 400).
func Authentication(message string) *Error {
	return &Error{Code: 400, Message: message}
}

// Authorization reports a missing or invalid token on a protected
// operation (code 401).
func Authorization(message string) *Error {
	return &Error{Code: 401, Message: message}
}

// NotFound reports a missing entity (code 404).
func NotFound(message string) *Error {
	return &Error{Code: 404, Message: message}
}

// Unknown is the fallback for anything unclassified (code 400, generic
// message).
func Unknown() *Error {
	return &Error{Code: 400, Message: UnknownMessage}
}

// From maps err to its client-facing shape: a tagged [*Error] anywhere in
// the chain is returned as-is, anything else collapses to [Unknown]. A nil
// err returns nil.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return Unknown()
}
