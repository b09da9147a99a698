package dossier

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		FetchAddress(ctx context.Context, address string, refresh bool) (model.Address, error)
		FetchTransactionsForAddress(ctx context.Context, address string, limit int, refresh bool) ([]model.Transaction, error)
		FetchBlock(ctx context.Context, hash string, refresh bool) (model.Block, error)
	}

	Reports interface {
		ReportsForAddress(ctx context.Context, address string, refresh bool) ([]model.Report, error)
	}

	Store interface {
		GetRiskProfile(ctx context.Context, address string) (model.RiskProfile, error)
	}
)
