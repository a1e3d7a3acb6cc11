package service

import (
	"context"

	"bookshelf-backend/internal/domains/author/model"
)

// Service is the business-logic facade over the author and book
// repositories. It owns the one non-trivial invariant of the system:
// deleting an author cascades to that author's books.
type Service interface {
	// GetAllAuthors is a pass-through. Callers needing book counts call
	// GetBookCountByAuthorID per author.
	GetAllAuthors(ctx context.Context) ([]model.Author, error)

	// GetAuthorByID returns model.ErrAuthorNotFound on a miss.
	GetAuthorByID(ctx context.Context, id int64) (*model.Author, error)

	// CreateAuthor delegates to the repository; validation errors
	// propagate as ozzo validation.Errors.
	CreateAuthor(ctx context.Context, firstName, lastName string) error

	// UpdateAuthor delegates to the repository. Missing ids surface as
	// model.ErrAuthorNotFound.
	UpdateAuthor(ctx context.Context, id int64, firstName, lastName string) error

	// DeleteAuthor removes the author's books, then the author. An author
	// is never deletable while leaving orphaned books behind: on the SQL
	// backend both steps run in one transaction, on the session backend
	// the books-first ordering guarantees a failure leaves the author
	// intact rather than orphans.
	DeleteAuthor(ctx context.Context, id int64) error

	// GetBookCountByAuthorID delegates to the book repository's count.
	GetBookCountByAuthorID(ctx context.Context, authorID int64) (int, error)
}
