package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transactor runs a function atomically. The SQL implementation opens a
// pgx transaction and injects it into the context so that repositories
// called from fn execute their statements on it; the no-op implementation
// just calls fn, for backends without transaction support.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type pgxTransactor struct {
	db Beginner
}

func NewTransactor(db Beginner) Transactor {
	return &pgxTransactor{db: db}
}

func (t *pgxTransactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// TxFromContext returns the transaction injected by WithTx, if any.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromContext resolves the Querier a repository should use: the
// context transaction when one is active, the given default otherwise.
func QuerierFromContext(ctx context.Context, def Querier) Querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return def
}

type noopTransactor struct{}

// NewNoopTransactor returns a Transactor for backends without transactions.
// Callers keep the books-before-author ordering as the best-effort guarantee.
func NewNoopTransactor() Transactor {
	return noopTransactor{}
}

func (noopTransactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
