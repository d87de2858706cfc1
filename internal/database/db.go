package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 抽象資料庫連線池，便於測試時以 FakeDB 取代
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Ping(context.Context) error
	Close()
}

type FakeDB struct {
	ExecFn      func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn     func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn  func(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatchFn func(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	PingFn      func(ctx context.Context) error
	CloseFn     func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

func (f *FakeDB) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	if f.SendBatchFn != nil {
		return f.SendBatchFn(ctx, b)
	}
	panic("unexpected SendBatch")
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
