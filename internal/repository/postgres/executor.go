package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor объединяет *sql.DB и *sql.Tx, чтобы репозитории
// одинаково работали и вне, и внутри транзакции.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
