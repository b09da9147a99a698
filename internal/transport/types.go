package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/cluster"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/dossier"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/pattern"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/risk"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/tracer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		FetchAddress(ctx context.Context, address string, refresh bool) (model.Address, error)
		FetchTransactionsForAddress(ctx context.Context, address string, limit int, refresh bool) ([]model.Transaction, error)
		FetchBlock(ctx context.Context, hash string, refresh bool) (model.Block, error)
	}

	Tracer interface {
		TraceOrigin(ctx context.Context, address string, maxDepth int) (model.TraceResult, error)
		TraceDestination(ctx context.Context, address string, opts tracer.DestinationOptions) (model.TraceResult, error)
	}

	Clusters interface {
		DetectByLabel(ctx context.Context, address string) (model.Cluster, error)
		DetectByCoOccurrence(ctx context.Context, address string, opts cluster.CoOccurrenceOptions) (model.Cluster, error)
		DetectRelations(ctx context.Context, address string) ([]model.Relation, error)
		RelationsForAddress(ctx context.Context, address string) ([]model.Relation, error)
	}

	Scorer interface {
		ScoreAddress(ctx context.Context, address string) (model.RiskFactors, error)
		ScoreAllAddresses(ctx context.Context) (risk.Summary, error)
	}

	Reports interface {
		ReportsForAddress(ctx context.Context, address string, refresh bool) ([]model.Report, error)
	}

	Patterns interface {
		TagAddress(ctx context.Context, address string) (pattern.Result, error)
	}

	Dossiers interface {
		Build(ctx context.Context, address string) (dossier.Dossier, error)
	}

	Correlator interface {
		Correlate(ctx context.Context, addresses []string, window string) (model.TemporalCorrelation, error)
	}
)
