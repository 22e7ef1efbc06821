package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager hands out the pgx transactions that the *InTx repository
// methods run in. Checkout and credit payments use one per request.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to defer after a successful Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
