package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/database"
)

const (
	authorCacheKeyPrefix = "author:"
	authorCacheTTL       = 15 * time.Minute
)

// postgresRepository implements Repository backed by a shared pgx pool.
// Parameterized statements only; ids come from the database sequence.
type postgresRepository struct {
	db    database.Querier
	cache cache.Cache
}

// NewPostgresRepository creates the SQL-backed author repository. The pool
// and cache are injected by the container.
func NewPostgresRepository(db database.Querier, c cache.Cache) Repository {
	return &postgresRepository{db: db, cache: c}
}

// q returns the active transaction when the service wrapped the call in
// one, the shared pool otherwise.
func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	const query = `
        SELECT id, first_name, last_name
        FROM authors
        ORDER BY id
    `

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	cacheKey := fmt.Sprintf("%s%d", authorCacheKeyPrefix, id)

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	const query = `
        SELECT id, first_name, last_name
        FROM authors
        WHERE id = $1
    `

	err := r.q(ctx).QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, authorCacheTTL)

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	if err := model.ValidateName(firstName, lastName); err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO authors (first_name, last_name)
        VALUES ($1, $2)
        RETURNING id
    `

	created := model.Author{FirstName: firstName, LastName: lastName}
	if err := r.q(ctx).QueryRow(ctx, query, firstName, lastName).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, firstName, lastName string) error {
	if err := model.ValidateName(firstName, lastName); err != nil {
		return err
	}

	const query = `
        UPDATE authors
        SET first_name = $1, last_name = $2
        WHERE id = $3
    `

	cmdTag, err := r.q(ctx).Exec(ctx, query, firstName, lastName, id)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("%s%d", authorCacheKeyPrefix, id))

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id = $1`

	// Zero rows affected is the documented no-op path, not an error.
	if _, err := r.q(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("%s%d", authorCacheKeyPrefix, id))

	return nil
}
