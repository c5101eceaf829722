package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts the single transaction a load runs in.
// *pgxpool.Pool, *pgxpool.Conn and *pgx.Conn satisfy it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Querier runs read queries. *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// batchSender is the subset of pgx.Tx used to flush queued statements.
type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}
