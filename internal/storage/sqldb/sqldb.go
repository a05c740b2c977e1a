// Package sqldb is the database/sql implementation of storage.Storage.
//
// It is split in two layers:
//
//   - Gateway executes a parameterised statement and returns the result as
//     column-name keyed rows. It knows nothing about SIMs or customers.
//   - Store holds the fixed statements for each storage operation and runs
//     them through any Querier (normally a *Gateway).
//
// Two drivers are supported through blank imports: "postgres" (lib/pq) for
// deployed environments and "sqlite3" (mattn/go-sqlite3) for local work and
// tests. Both accept $1..$n positional placeholders, so every statement is
// written once.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/sim-verify/internal/config"
	"github.com/aanand-mishra/sim-verify/internal/storage"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Open opens a connection pool for cfg, applies the pool limits and checks
// the connection with a ping. sql.Open alone never dials, so without the
// ping a bad DSN would only show up on the first request.
func Open(ctx context.Context, cfg config.Storage) (*sql.DB, error) {
	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("sqldb.Open: unsupported driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqldb.Open: open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqldb.Open: ping: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// Gateway runs parameterised statements against a *sql.DB.
// A *sql.DB is a pool and safe for concurrent use, so one Gateway is shared
// by every request.
type Gateway struct {
	Db *sql.DB
}

// NewGateway wraps db.
func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{Db: db}
}

// Query executes query with args bound to its positional placeholders and
// returns every result row. Values are never spliced into the statement
// text. A statement that yields no rows returns an empty, non-nil slice.
func (g *Gateway) Query(ctx context.Context, query string, args ...any) ([]storage.Row, error) {
	rows, err := g.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	out := make([]storage.Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(storage.Row, len(cols))
		for i, col := range cols {
			row[col] = normalize(values[i])
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return out, nil
}

// Ping checks the pool can reach the database.
func (g *Gateway) Ping(ctx context.Context) error {
	return g.Db.PingContext(ctx)
}

// Close releases the pool.
func (g *Gateway) Close() error {
	return g.Db.Close()
}

// normalize converts driver values that do not encode well as JSON.
// Both drivers hand back TEXT/VARCHAR as []byte when scanning into any,
// which encoding/json would otherwise emit as base64.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
