package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"traffic-exchange/internal/core/port"
)

var (
	_ port.LedgerStore     = (*Store)(nil)
	_ port.QueryRepository = (*Store)(nil)
	_ port.FraudRepository = (*Store)(nil)
)

// PostgreSQL error codes that mean a unit of work lost a race and was
// rolled back as a whole.
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const codeForeignKeyViolation = "23503"

// Store implements the ledger, query and fraud ports on top of pgxpool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a store backed by pool. The caller owns the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InTx runs fn in a serializable transaction. Rows locked through the
// LedgerTx stay locked until the transaction ends. The transaction is
// committed only when fn returns nil.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return classify(fmt.Errorf("begin: %w", err))
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = classify(fmt.Errorf("commit: %w", cerr))
		}
	}()

	if err = fn(ctx, &ledgerTx{tx: tx}); err != nil {
		return classify(err)
	}
	return nil
}

// classify marks constraint and serialization failures as
// port.ErrTransactionFailure. Business rejections are returned untouched.
func classify(err error) error {
	if err == nil || port.IsRejection(err) || errors.Is(err, port.ErrTransactionFailure) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeCheckViolation, codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %w", port.ErrTransactionFailure, err)
		}
	}
	return err
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return err
}
