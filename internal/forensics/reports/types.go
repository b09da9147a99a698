package reports

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Feed interface {
		Reports(ctx context.Context, address string) ([]model.Report, error)
	}

	Store interface {
		ReportsByAddresses(ctx context.Context, addresses []string) ([]model.Report, error)
		UpsertReports(ctx context.Context, reports []model.Report) error
	}
)
