package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs units of work in a transaction carried by the context.
// Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx runs fn in a Read Committed transaction. Row locks taken inside fn
// (SELECT ... FOR UPDATE) are held until commit.
//
// A ctx that already carries a transaction is reused, so the outermost call
// owns commit and rollback. Rollback runs even when ctx has been cancelled,
// and a panic in fn rolls back before propagating.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	rollback := func() error {
		return tx.Rollback(context.WithoutCancel(ctx))
	}

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := rollback(); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
