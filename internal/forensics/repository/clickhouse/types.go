package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the subset of the ClickHouse connection the repository relies on.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	Rows interface {
		driver.Rows
	}

	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
