package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tx is a transaction-scoped DBTX. pgx.Tx satisfies it.
type Tx interface {
	DBTX
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxBeginner opens transactions; commands depend on it instead of the pool
// so the transaction boundary stays mockable.
type TxBeginner interface {
	Begin(ctx context.Context) (Tx, error)
}

type poolTxBeginner struct {
	pool *pgxpool.Pool
}

func NewTxBeginner(pool *pgxpool.Pool) TxBeginner {
	return &poolTxBeginner{pool: pool}
}

func (b *poolTxBeginner) Begin(ctx context.Context) (Tx, error) {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
