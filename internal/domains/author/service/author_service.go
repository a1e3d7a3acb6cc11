package service

import (
	"context"
	"fmt"

	"bookshelf-backend/internal/domains/author/model"
	authorrepo "bookshelf-backend/internal/domains/author/repository"
	bookrepo "bookshelf-backend/internal/domains/book/repository"
	"bookshelf-backend/pkg/database"
)

// authorService implements Service.
type authorService struct {
	authorRepo authorrepo.Repository
	bookRepo   bookrepo.Repository
	tx         database.Transactor
}

// NewAuthorService creates the author service. Both repositories and the
// transactor are injected by the container; the transactor is the pgx one
// for the SQL backend and the no-op one for the session backend.
func NewAuthorService(authorRepo authorrepo.Repository, bookRepo bookrepo.Repository, tx database.Transactor) Service {
	return &authorService{
		authorRepo: authorRepo,
		bookRepo:   bookRepo,
		tx:         tx,
	}
}

func (s *authorService) GetAllAuthors(ctx context.Context) ([]model.Author, error) {
	return s.authorRepo.GetAll(ctx)
}

func (s *authorService) GetAuthorByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.authorRepo.GetByID(ctx, id)
}

func (s *authorService) CreateAuthor(ctx context.Context, firstName, lastName string) error {
	_, err := s.authorRepo.Create(ctx, firstName, lastName)
	return err
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, firstName, lastName string) error {
	return s.authorRepo.Update(ctx, id, firstName, lastName)
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	// Books first. If this step fails the author stays intact; the
	// reverse order could leave books referencing a nonexistent author.
	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.bookRepo.DeleteByAuthorID(ctx, id); err != nil {
			return fmt.Errorf("failed to delete author's books: %w", err)
		}
		return s.authorRepo.Delete(ctx, id)
	})
}

func (s *authorService) GetBookCountByAuthorID(ctx context.Context, authorID int64) (int, error) {
	return s.bookRepo.CountByAuthorID(ctx, authorID)
}
