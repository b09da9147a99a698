package tracer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		LatestTransactions(ctx context.Context, address string, limit int) ([]model.Transaction, error)
	}

	Store interface {
		TraceResult(ctx context.Context, key model.TraceKey) (model.TraceResult, error)
		InsertTraceResult(ctx context.Context, r model.TraceResult) (model.TraceResult, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
