package pattern

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		FetchTransactionsForAddress(ctx context.Context, address string, limit int, refresh bool) ([]model.Transaction, error)
	}

	Store interface {
		SetTransactionPatterns(ctx context.Context, hash string, patterns []model.Pattern) (bool, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
