package databaseutils

import (
	"context"
	"database/sql"
	"time"
)

// SQLTemplate runs statements against the pool with a bounded per-call
// timeout so a slow store surfaces as a deadline error instead of hanging
// the handler.
type SQLTemplate struct {
	DB      *sql.DB
	Timeout time.Duration
}

func NewSQLTemplate(db *sql.DB, timeout time.Duration) *SQLTemplate {
	return &SQLTemplate{
		DB:      db,
		Timeout: timeout,
	}
}

func ExecuteQuery[T any](sqlTemplate *SQLTemplate, ctx context.Context, query string, extractor func(rows *sql.Rows) (T, error), args ...any) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, sqlTemplate.Timeout)
	defer cancel()
	rows, err := sqlTemplate.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		t, err := extractor(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ExecuteSingleQuery expects exactly one row and returns sql.ErrNoRows when
// the result set is empty.
func ExecuteSingleQuery[T any](sqlTemplate *SQLTemplate, ctx context.Context, query string, extractor func(rows *sql.Rows) (T, error), args ...any) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, sqlTemplate.Timeout)
	defer cancel()
	rows, err := sqlTemplate.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, sql.ErrNoRows
	}

	result, err := extractor(rows)
	if err != nil {
		return zero, err
	}
	if err := rows.Err(); err != nil {
		return zero, err
	}

	return result, nil
}

// ExecuteUpdate runs a statement that returns no rows and reports the number
// of rows affected.
func ExecuteUpdate(sqlTemplate *SQLTemplate, ctx context.Context, query string, args ...any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, sqlTemplate.Timeout)
	defer cancel()
	result, err := sqlTemplate.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
