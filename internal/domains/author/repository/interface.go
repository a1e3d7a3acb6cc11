package repository

import (
	"context"

	"bookshelf-backend/internal/domains/author/model"
)

// Repository is the storage-agnostic contract for author data access.
// Implementations: session-backed (per-user session scope) and
// postgres-backed (shared pgx pool).
type Repository interface {
	// GetAll returns every known author. Order is stable within a backend.
	GetAll(ctx context.Context) ([]model.Author, error)

	// GetByID returns model.ErrAuthorNotFound when the id does not exist.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// Create assigns a fresh unique id, persists and returns the new
	// author. Invalid names never reach storage.
	Create(ctx context.Context, firstName, lastName string) (*model.Author, error)

	// Update replaces both name fields. Returns model.ErrAuthorNotFound
	// when the id does not exist.
	Update(ctx context.Context, id int64, firstName, lastName string) error

	// Delete removes the author if present. Deleting an absent id is a
	// no-op, not an error.
	Delete(ctx context.Context, id int64) error
}
