package repository

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations holds the numbered *.up.sql files plus 000_drop_all.sql.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// NewPool opens a PostgreSQL connection pool and checks it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
