package risk

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Reports interface {
		ReportsForAddress(ctx context.Context, address string, refresh bool) ([]model.Report, error)
	}

	Gateway interface {
		LatestTransactions(ctx context.Context, address string, limit int) ([]model.Transaction, error)
	}

	Store interface {
		UpsertRiskProfile(ctx context.Context, p model.RiskProfile) error
		ListAddresses(ctx context.Context) ([]string, error)
	}

	AnalysisLog interface {
		Append(ctx context.Context, address string, factors model.RiskFactors) (model.RiskAnalysis, error)
	}

	Alerts interface {
		Raise(ctx context.Context, address string, factors model.RiskFactors) (model.Alert, bool, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
