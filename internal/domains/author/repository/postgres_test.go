package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/author/model"
	"bookshelf-backend/pkg/cache"
)

func newPostgresRepo(t *testing.T) (pgxmock.PgxPoolIface, Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresRepository(mock, cache.NewNoop())
}

func TestPostgresGetAll(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectQuery(`(?s)SELECT id, first_name, last_name.+FROM authors.+ORDER BY id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(int64(1), "Sofija", "Dokmanovic").
			AddRow(int64(2), "Ana", "Ivanovic"))

	authors, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Author{
		{ID: 1, FirstName: "Sofija", LastName: "Dokmanovic"},
		{ID: 2, FirstName: "Ana", LastName: "Ivanovic"},
	}, authors)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectQuery(`(?s)SELECT id, first_name, last_name.+FROM authors.+WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(int64(2), "Ana", "Ivanovic"))

	got, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, model.Author{ID: 2, FirstName: "Ana", LastName: "Ivanovic"}, *got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectQuery(`(?s)SELECT id, first_name, last_name.+FROM authors.+WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, model.ErrAuthorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectQuery(`(?s)INSERT INTO authors.+RETURNING id`).
		WithArgs("Ada", "Lovelace").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	created, err := repo.Create(context.Background(), "Ada", "Lovelace")
	require.NoError(t, err)
	require.Equal(t, model.Author{ID: 3, FirstName: "Ada", LastName: "Lovelace"}, *created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateInvalid(t *testing.T) {
	t.Parallel()

	// Validation failures never reach the database, so no expectations.
	mock, repo := newPostgresRepo(t)

	_, err := repo.Create(context.Background(), "", "Lovelace")
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectExec(`(?s)UPDATE authors.+SET first_name = \$1, last_name = \$2.+WHERE id = \$3`).
		WithArgs("Sofia", "Dokmanovic", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), 1, "Sofia", "Dokmanovic"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateMissing(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectExec(`(?s)UPDATE authors`).
		WithArgs("Ada", "Lovelace", int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), 42, "Ada", "Lovelace")
	require.ErrorIs(t, err, model.ErrAuthorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	t.Parallel()

	mock, repo := newPostgresRepo(t)

	mock.ExpectExec(`DELETE FROM authors WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 1))

	// An absent id deletes zero rows and still succeeds.
	mock.ExpectExec(`DELETE FROM authors WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), 42))

	require.NoError(t, mock.ExpectationsWereMet())
}
