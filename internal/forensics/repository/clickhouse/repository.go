package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository is the graph store backed by ClickHouse. Mutable entities live in
// ReplacingMergeTree tables and are read with FINAL.
type Repository struct {
	conn    Conn
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
	newID   func() uuid.UUID
}

func NewRepository(dsn string, metrics Metrics, logger *zap.Logger) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return newRepository(nativeConn{conn}, metrics, logger), nil
}

func newRepository(conn Conn, metrics Metrics, logger *zap.Logger) *Repository {
	return &Repository{
		conn:    conn,
		metrics: metrics,
		logger:  logger.Named("clickhouse"),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.New,
	}
}

// Ping checks that the server is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.conn.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

type nativeConn struct {
	driver.Conn
}

func (c nativeConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.Conn.PrepareBatch(ctx, query)
}
