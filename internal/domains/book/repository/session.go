package repository

import (
	"context"
	"encoding/gob"

	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/session"
)

// Session key holding the serialized book collection.
const booksSessionKey = "books"

func init() {
	gob.Register([]model.Book{})
}

// sessionRepository treats the per-user session scope as the system of
// record, mirroring the author session repository: decode on every
// operation, re-serialize on every mutation.
type sessionRepository struct {
	store session.Store
}

// NewSessionRepository creates the session-backed book repository.
func NewSessionRepository(store session.Store) Repository {
	return &sessionRepository{store: store}
}

// defaultBooks is the fixture a fresh session is seeded with. Author ids
// match the author fixture.
func defaultBooks() []model.Book {
	return []model.Book{
		{ID: 1, Title: "Book Title 1", Year: 2021, AuthorID: 1},
		{ID: 2, Title: "Book Title 2", Year: 2020, AuthorID: 2},
		{ID: 3, Title: "Book Title 3", Year: 2022, AuthorID: 1},
		{ID: 4, Title: "Book Title 4", Year: 2023, AuthorID: 1},
	}
}

func (r *sessionRepository) load(ctx context.Context) []model.Book {
	if v := r.store.Get(ctx, booksSessionKey); v != nil {
		if books, ok := v.([]model.Book); ok {
			return books
		}
	}

	books := defaultBooks()
	r.save(ctx, books)
	return books
}

func (r *sessionRepository) save(ctx context.Context, books []model.Book) {
	r.store.Set(ctx, booksSessionKey, books)
}

func (r *sessionRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	return r.load(ctx), nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	for _, b := range r.load(ctx) {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *sessionRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error) {
	var books []model.Book
	for _, b := range r.load(ctx) {
		if b.AuthorID == authorID {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *sessionRepository) CountByAuthorID(ctx context.Context, authorID int64) (int, error) {
	count := 0
	for _, b := range r.load(ctx) {
		if b.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r *sessionRepository) Add(ctx context.Context, title string, year int, authorID int64) (*model.Book, error) {
	if err := model.ValidateBook(title, year); err != nil {
		return nil, err
	}

	books := r.load(ctx)
	created := model.Book{
		ID:       nextID(books),
		Title:    title,
		Year:     year,
		AuthorID: authorID,
	}

	books = append(books, created)
	r.save(ctx, books)

	return &created, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	books := r.load(ctx)

	kept := books[:0:0]
	for _, b := range books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	r.save(ctx, kept)
	return nil
}

func (r *sessionRepository) DeleteByAuthorID(ctx context.Context, authorID int64) error {
	books := r.load(ctx)

	kept := books[:0:0]
	for _, b := range books {
		if b.AuthorID != authorID {
			kept = append(kept, b)
		}
	}

	r.save(ctx, kept)
	return nil
}

func nextID(books []model.Book) int64 {
	var last int64
	for _, b := range books {
		if b.ID > last {
			last = b.ID
		}
	}
	return last + 1
}
