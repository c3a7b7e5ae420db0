//go:build unit || e2e

// Package dbtest resets database state between test cases.
package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The schema is applied in code, so the table list is fixed; CASCADE keeps
// the statement order-independent.
const truncateSQL = `TRUNCATE users, resources, timeslots, reservations RESTART IDENTITY CASCADE;`

// ResetDB truncates every table and restarts the id sequences so each test
// case sees a pristine database.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}

// CountRows returns the number of rows in a table. Tables are created by the
// in-code schema, so the name is never user input.
func CountRows(pool *pgxpool.Pool, table string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int64
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n)
	return n, err
}
