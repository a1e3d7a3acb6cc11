package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestWithTxCommitsOnSuccess(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tr := NewTransactor(mock)

	var sawTx bool
	err = tr.WithTx(context.Background(), func(ctx context.Context) error {
		_, sawTx = TxFromContext(ctx)
		return nil
	})
	require.NoError(t, err)
	require.True(t, sawTx, "the transaction must be visible to repositories via the context")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tr := NewTransactor(mock)

	err = tr.WithTx(context.Background(), func(ctx context.Context) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxBeginError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errBoom)

	tr := NewTransactor(mock)

	err = tr.WithTx(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when the transaction cannot be started")
		return nil
	})
	require.ErrorIs(t, err, errBoom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuerierFromContextFallsBack(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// Without an active transaction the default querier is used.
	q := QuerierFromContext(context.Background(), mock)
	require.Equal(t, Querier(mock), q)
}

func TestNoopTransactorRunsInPlace(t *testing.T) {
	t.Parallel()

	tr := NewNoopTransactor()

	called := false
	err := tr.WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		_, ok := TxFromContext(ctx)
		require.False(t, ok, "no transaction is injected by the no-op transactor")
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)

	err = tr.WithTx(context.Background(), func(ctx context.Context) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)
}
