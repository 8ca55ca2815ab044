// Package postgres provides the pgx v5 connection pool behind the Postgres
// character store
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// Pool wraps a pgx connection pool with health-check and lifecycle methods
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool connects to databaseURL and pings it before returning
func NewPool(ctx context.Context, databaseURL string) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeInvalidArgument, "parse database url")
	}

	// pool sizing comes from URL parameters such as pool_max_conns
	poolCfg.MinConns = max(poolCfg.MinConns, 1)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeUnavailable, "create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, herr.WrapWithCode(err, herr.CodeUnavailable, "ping database")
	}

	return &Pool{pool: pool}, nil
}

// Health checks that the database answers within timeout
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close releases all pool resources
func (p *Pool) Close() {
	p.pool.Close()
}

// DB returns the underlying pgxpool.Pool for use by repositories
func (p *Pool) DB() *pgxpool.Pool {
	return p.pool
}

// IsUniqueViolation checks for SQLSTATE 23505
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ViolatedConstraint names the constraint a Postgres error tripped, if any
func ViolatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
