package service

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// Service is a thin facade over the book repository. The cascade invariant
// lives in the author service; the only cross-entity rule here is that a
// book may only be created for an existing author.
type Service interface {
	GetAllBooks(ctx context.Context) ([]model.Book, error)

	// GetBookByID returns model.ErrBookNotFound on a miss.
	GetBookByID(ctx context.Context, id int64) (*model.Book, error)

	GetBooksByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error)

	CountBooksByAuthorID(ctx context.Context, authorID int64) (int, error)

	// CreateBook verifies the author exists, then delegates to the
	// repository. The session backend has no foreign keys, so the check
	// cannot be left to storage.
	CreateBook(ctx context.Context, title string, year int, authorID int64) (*model.Book, error)

	// DeleteBook delegates to the repository; deleting an absent id is a
	// no-op.
	DeleteBook(ctx context.Context, id int64) error
}
