package service

import (
	"context"
	"fmt"

	authorrepo "bookshelf-backend/internal/domains/author/repository"
	"bookshelf-backend/internal/domains/book/model"
	bookrepo "bookshelf-backend/internal/domains/book/repository"
)

// bookService implements Service.
type bookService struct {
	bookRepo   bookrepo.Repository
	authorRepo authorrepo.Repository
}

// NewBookService creates the book service. The author repository is needed
// for the existing-author check on creation.
func NewBookService(bookRepo bookrepo.Repository, authorRepo authorrepo.Repository) Service {
	return &bookService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.GetAll(ctx)
}

func (s *bookService) GetBookByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) GetBooksByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error) {
	return s.bookRepo.GetByAuthorID(ctx, authorID)
}

func (s *bookService) CountBooksByAuthorID(ctx context.Context, authorID int64) (int, error) {
	return s.bookRepo.CountByAuthorID(ctx, authorID)
}

func (s *bookService) CreateBook(ctx context.Context, title string, year int, authorID int64) (*model.Book, error) {
	// Every book must reference an author that exists at creation time.
	if _, err := s.authorRepo.GetByID(ctx, authorID); err != nil {
		return nil, fmt.Errorf("cannot create book: %w", err)
	}

	return s.bookRepo.Add(ctx, title, year, authorID)
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	return s.bookRepo.Delete(ctx, id)
}
