package repository

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// Repository is the storage-agnostic contract for book data access.
type Repository interface {
	// GetAll returns every known book. Order is stable within a backend.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByID returns model.ErrBookNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetByAuthorID returns all books of an author; empty when none.
	GetByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error)

	// CountByAuthorID equals len(GetByAuthorID) but may be pushed down to
	// storage.
	CountByAuthorID(ctx context.Context, authorID int64) (int, error)

	// Add assigns a fresh unique id, persists and returns the new book.
	// Invalid titles and non-positive years never reach storage.
	Add(ctx context.Context, title string, year int, authorID int64) (*model.Book, error)

	// Delete removes the book if present. Deleting an absent id is a
	// no-op, not an error.
	Delete(ctx context.Context, id int64) error

	// DeleteByAuthorID removes every book of an author. Idempotent and
	// safe on an author with zero books.
	DeleteByAuthorID(ctx context.Context, authorID int64) error
}
