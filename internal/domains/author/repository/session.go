package repository

import (
	"context"
	"encoding/gob"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/session"
)

// Session key holding the serialized author collection.
const authorsSessionKey = "authors"

func init() {
	// Session values are gob-encoded when the session is committed.
	gob.Register([]model.Author{})
}

// sessionRepository treats the per-user session scope as the system of
// record. The collection is decoded from the session on every operation and
// re-serialized on every mutation, so the next request observes the change.
type sessionRepository struct {
	store session.Store
}

// NewSessionRepository creates the session-backed author repository.
func NewSessionRepository(store session.Store) Repository {
	return &sessionRepository{store: store}
}

// defaultAuthors is the fixture a fresh session is seeded with.
func defaultAuthors() []model.Author {
	return []model.Author{
		{ID: 1, FirstName: "Sofija", LastName: "Dokmanovic"},
		{ID: 2, FirstName: "Ana", LastName: "Ivanovic"},
	}
}

func (r *sessionRepository) load(ctx context.Context) []model.Author {
	if v := r.store.Get(ctx, authorsSessionKey); v != nil {
		if authors, ok := v.([]model.Author); ok {
			return authors
		}
	}

	// Absent key: seed the default dataset and write it back so the next
	// request sees a stable collection.
	authors := defaultAuthors()
	r.save(ctx, authors)
	return authors
}

func (r *sessionRepository) save(ctx context.Context, authors []model.Author) {
	r.store.Set(ctx, authorsSessionKey, authors)
}

func (r *sessionRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	return r.load(ctx), nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	for _, a := range r.load(ctx) {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, model.ErrAuthorNotFound
}

func (r *sessionRepository) Create(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	if err := model.ValidateName(firstName, lastName); err != nil {
		return nil, err
	}

	authors := r.load(ctx)
	created := model.Author{
		ID:        nextID(authors),
		FirstName: firstName,
		LastName:  lastName,
	}

	authors = append(authors, created)
	r.save(ctx, authors)

	return &created, nil
}

func (r *sessionRepository) Update(ctx context.Context, id int64, firstName, lastName string) error {
	if err := model.ValidateName(firstName, lastName); err != nil {
		return err
	}

	authors := r.load(ctx)
	for i := range authors {
		if authors[i].ID == id {
			authors[i].FirstName = firstName
			authors[i].LastName = lastName
			r.save(ctx, authors)
			return nil
		}
	}

	return model.ErrAuthorNotFound
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	authors := r.load(ctx)

	kept := authors[:0:0]
	for _, a := range authors {
		if a.ID != id {
			kept = append(kept, a)
		}
	}

	r.save(ctx, kept)
	return nil
}

// nextID assigns max(existing ids)+1, falling back to 1 for an empty
// collection. Ids are never reused within a session once assigned.
func nextID(authors []model.Author) int64 {
	var last int64
	for _, a := range authors {
		if a.ID > last {
			last = a.ID
		}
	}
	return last + 1
}
