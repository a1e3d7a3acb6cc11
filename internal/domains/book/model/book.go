package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Title length bound shared by both storage backends.
const MaxTitleLength = 255

// Book is the domain entity. AuthorID references an existing author; the
// service layer enforces that at creation time because the session backend
// has no foreign keys.
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"authorId"`
}

// ValidateBook checks title and year against the storage contract. Invalid
// books must not reach storage, so every repository runs this before
// persisting.
func ValidateBook(title string, year int) error {
	return validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error("title must be between 1 and 255 characters"),
		),
		"year": validation.Validate(year,
			// Required catches the zero year; Min alone skips zero values.
			validation.Required.Error("year is required"),
			validation.Min(1).Error("year must be positive"),
		),
	}.Filter()
}
