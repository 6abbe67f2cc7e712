package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is what repositories run statements against. *pgxpool.Pool,
// pgx.Tx and pgxmock all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Builder emits $N placeholders for dynamic queries.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type activeTx struct{}

// QuerierFromCtx returns the transaction opened by TxManager.RunInTx for
// this context, or db when the call is not inside one.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx := txFromCtx(ctx); tx != nil {
		return tx
	}
	return db
}

func txFromCtx(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(activeTx{}).(pgx.Tx)
	return tx
}
