package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Name length bound shared by both storage backends.
const MaxNameLength = 100

// Author is the domain entity. The id is assigned by the repository on
// creation and immutable afterwards.
type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns the display name used by list views.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// ValidateName checks the name fields against the storage contract:
// never empty, never longer than MaxNameLength. Invalid names must not
// reach storage, so every repository runs this before persisting.
func ValidateName(firstName, lastName string) error {
	return validation.Errors{
		"firstName": validation.Validate(firstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, MaxNameLength).Error("first name must be between 1 and 100 characters"),
		),
		"lastName": validation.Validate(lastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, MaxNameLength).Error("last name must be between 1 and 100 characters"),
		),
	}.Filter()
}
