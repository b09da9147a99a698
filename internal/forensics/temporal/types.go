package temporal

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
		InsertTemporalCorrelation(ctx context.Context, c model.TemporalCorrelation) (model.TemporalCorrelation, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
