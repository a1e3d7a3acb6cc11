package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrBookNotFound is returned by lookups when the id does not exist.
	ErrBookNotFound = errors.New("book not found")
)

// ToHTTPStatus converts an error to an HTTP status code. The book JSON
// endpoints answer validation failures with 400, matching the add-book
// contract.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.As(err, &vErrs):
		return 400
	default:
		return 500
	}
}
