package cluster

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Labeler interface {
		Lookup(ctx context.Context, address string) (model.WalletLabel, error)
	}

	Gateway interface {
		FetchTransactionsForAddress(ctx context.Context, address string, limit int, refresh bool) ([]model.Transaction, error)
	}

	Reports interface {
		StoredReports(ctx context.Context, addresses []string) ([]model.Report, error)
	}

	Classifier interface {
		ClusterBand(reportCount int, categories []string) model.RiskBand
	}

	Store interface {
		ClusterByMember(ctx context.Context, address string, algorithm model.ClusterAlgorithm) (model.Cluster, error)
		InsertCluster(ctx context.Context, c model.Cluster) (model.Cluster, error)
		TransactionsByAddress(ctx context.Context, address string, since time.Time) ([]model.Transaction, error)
		LabelledClusters(ctx context.Context) ([]model.Cluster, error)
		AllReports(ctx context.Context) ([]model.Report, error)
		UpsertRelations(ctx context.Context, relations []model.Relation) error
		RelationsByAddress(ctx context.Context, address string) ([]model.Relation, error)
	}

	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
