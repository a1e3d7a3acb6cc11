package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrAuthorNotFound is returned by lookups, updates and deletes-with-
	// check when the id does not exist.
	ErrAuthorNotFound = errors.New("author not found")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.As(err, &vErrs):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. Validation
// failures are recoverable (re-rendered as a form), not-found propagates as
// 404, anything else is a storage failure and fatal for the request.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.As(err, &vErrs):
		return 422
	default:
		return 500
	}
}
