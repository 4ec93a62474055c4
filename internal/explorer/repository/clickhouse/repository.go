// Package clickhouse stores the explorer ledger in ClickHouse.
//
// Address totals live in a SummingMergeTree fed by a materialized view over
// the per-transaction ledger entries, so a delta and its entry land in one
// insert. Reads aggregate with sum() or FINAL; removals use lightweight DELETE.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}
	// Conn is the part of a ClickHouse connection the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)

// Repository is the ClickHouse ledger store of one coin and network.
type Repository struct {
	conn    Conn
	metrics Metrics
	coin    model.Coin
	network model.Network
	now     func() time.Time

	versionMu   sync.Mutex
	lastVersion uint64
}

// NewRepository connects to dsn and scopes the store to coin and network.
func NewRepository(dsn string, coin model.Coin, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{
		conn:    nativeConn{conn: conn},
		metrics: metrics,
		coin:    coin,
		network: network,
		now:     time.Now,
	}, nil
}

// Close closes the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// version orders ReplacingMergeTree rows written by this process. It follows
// the wall clock but never repeats or goes backwards when the clock steps.
func (r *Repository) version() uint64 {
	r.versionMu.Lock()
	defer r.versionMu.Unlock()
	v := uint64(max(r.now().UnixNano(), 0))
	if v <= r.lastVersion {
		v = r.lastVersion + 1
	}
	r.lastVersion = v
	return v
}

type nativeConn struct {
	conn clickhouse.Conn
}

func (c nativeConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c nativeConn) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

func (c nativeConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c nativeConn) Close() error {
	return c.conn.Close()
}

func closeRows(rows Rows, err *error) {
	if closeErr := rows.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close rows: %w", closeErr)
	}
}
