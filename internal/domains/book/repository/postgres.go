package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	authormodel "bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/database"
)

// Postgres error code for foreign key violations on books.author_id.
const errForeignKeyViolation = "23503"

const (
	bookCacheKeyPrefix = "book:"
	bookCacheTTL       = 15 * time.Minute
)

// postgresRepository implements Repository backed by a shared pgx pool.
type postgresRepository struct {
	db    database.Querier
	cache cache.Cache
}

// NewPostgresRepository creates the SQL-backed book repository.
func NewPostgresRepository(db database.Querier, c cache.Cache) Repository {
	return &postgresRepository{db: db, cache: c}
}

func (r *postgresRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	const query = `
        SELECT id, title, year, author_id
        FROM books
        ORDER BY id
    `

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	cacheKey := fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	const query = `
        SELECT id, title, year, author_id
        FROM books
        WHERE id = $1
    `

	err := r.q(ctx).QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Year, &b.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, bookCacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error) {
	const query = `
        SELECT id, title, year, author_id
        FROM books
        WHERE author_id = $1
        ORDER BY id
    `

	rows, err := r.q(ctx).Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books by author: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) CountByAuthorID(ctx context.Context, authorID int64) (int, error) {
	// Pushed down to the database instead of fetching all rows.
	const query = `
        SELECT COUNT(*)
        FROM books
        WHERE author_id = $1
    `

	var count int
	if err := r.q(ctx).QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books by author: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) Add(ctx context.Context, title string, year int, authorID int64) (*model.Book, error) {
	if err := model.ValidateBook(title, year); err != nil {
		return nil, err
	}

	const query = `
        INSERT INTO books (title, year, author_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `

	created := model.Book{Title: title, Year: year, AuthorID: authorID}
	if err := r.q(ctx).QueryRow(ctx, query, title, year, authorID).Scan(&created.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == errForeignKeyViolation {
			return nil, authormodel.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = $1`

	// Zero rows affected is the documented no-op path, not an error.
	if _, err := r.q(ctx).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	_ = r.cache.Delete(ctx, fmt.Sprintf("%s%d", bookCacheKeyPrefix, id))

	return nil
}

func (r *postgresRepository) DeleteByAuthorID(ctx context.Context, authorID int64) error {
	const query = `DELETE FROM books WHERE author_id = $1 RETURNING id`

	rows, err := r.q(ctx).Query(ctx, query, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete books by author: %w", err)
	}
	defer rows.Close()

	var cacheKeys []string
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan deleted book id: %w", err)
		}
		cacheKeys = append(cacheKeys, fmt.Sprintf("%s%d", bookCacheKeyPrefix, id))
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating deleted books: %w", err)
	}

	_ = r.cache.Delete(ctx, cacheKeys...)

	return nil
}

func scanBooks(rows pgx.Rows) ([]model.Book, error) {
	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Year, &b.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
