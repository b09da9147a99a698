// Package cluster groups addresses that are likely controlled by one owner.
package cluster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/reports"
	"go.uber.org/zap"
)

const (
	DefaultMaxHops    = 3
	DefaultMaxMembers = 500
)

type Detector struct {
	labeler    Labeler
	gateway    Gateway
	reports    Reports
	classifier Classifier
	store      Store
	metrics    Metrics
	params     *chaincfg.Params
	logger     *zap.Logger
	now        func() time.Time
}

func NewDetector(
	labeler Labeler,
	gateway Gateway,
	reports Reports,
	classifier Classifier,
	store Store,
	metrics Metrics,
	params *chaincfg.Params,
	logger *zap.Logger,
) *Detector {
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	return &Detector{
		labeler:    labeler,
		gateway:    gateway,
		reports:    reports,
		classifier: classifier,
		store:      store,
		metrics:    metrics,
		params:     params,
		logger:     logger.Named("cluster"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// DetectByLabel returns the labelled cluster containing address. Stored
// snapshots are served as is; otherwise the wallet-clustering service is asked
// and its answer persisted. model.ErrNotFound means the address is not clustered.
func (d *Detector) DetectByLabel(ctx context.Context, address string) (_ model.Cluster, err error) {
	start := time.Now()
	defer func() {
		d.metrics.Observe("detect_by_label", err, start)
	}()

	if err = model.ValidateAddress(address, d.params); err != nil {
		return model.Cluster{}, err
	}

	stored, err := d.store.ClusterByMember(ctx, address, model.ClusterByLabel)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Cluster{}, fmt.Errorf("load cluster: %w", err)
	}

	label, err := d.labeler.Lookup(ctx, address)
	if err != nil {
		return model.Cluster{}, fmt.Errorf("lookup wallet label: %w", err)
	}
	if !label.Found {
		return model.Cluster{}, fmt.Errorf("wallet label of %s: %w", address, model.ErrNotFound)
	}

	members := []string{address}
	c := model.Cluster{
		BaseAddress:    address,
		Members:        members,
		Label:          label.Label,
		WalletID:       label.WalletID,
		Algorithm:      model.ClusterByLabel,
		RiskType:       d.riskType(ctx, members),
		Description:    "Cluster detectado: " + label.Label,
		UpdatedToBlock: label.UpdatedToBlock,
		CreatedAt:      d.now(),
	}
	c, err = d.store.InsertCluster(ctx, c)
	if err != nil {
		return model.Cluster{}, fmt.Errorf("store cluster: %w", err)
	}
	return c, nil
}

// riskType classifies a member set from the stored reports of its members.
// Unreadable reports leave the risk type empty.
func (d *Detector) riskType(ctx context.Context, members []string) model.RiskBand {
	stored, err := d.reports.StoredReports(ctx, members)
	if err != nil {
		d.logger.Warn("cluster risk left unclassified", zap.Error(err))
		return ""
	}
	return d.classifier.ClusterBand(len(stored), reports.Categories(stored))
}
