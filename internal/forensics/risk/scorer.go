// Package risk scores addresses from their report history and activity.
package risk

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"go.uber.org/zap"
)

const DefaultConcurrency = 4

type Config struct {
	Policy      Policy
	Params      *chaincfg.Params
	Concurrency int
}

type Scorer struct {
	reports Reports
	gateway Gateway
	store   Store
	log     AnalysisLog
	alerts  Alerts
	metrics Metrics
	policy  Policy
	params  *chaincfg.Params
	workers int
	logger  *zap.Logger
	now     func() time.Time
}

// Summary counts the outcome of a full scoring run.
type Summary struct {
	Scored int `json:"scored"`
	Failed int `json:"failed"`
}

func NewScorer(reports Reports, gateway Gateway, store Store, log AnalysisLog, alerts Alerts, metrics Metrics, cfg Config, logger *zap.Logger) *Scorer {
	if cfg.Params == nil {
		cfg.Params = &chaincfg.MainNetParams
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Policy.CategoryWeights == nil {
		cfg.Policy = DefaultPolicy()
	}
	return &Scorer{
		reports: reports,
		gateway: gateway,
		store:   store,
		log:     log,
		alerts:  alerts,
		metrics: metrics,
		policy:  cfg.Policy,
		params:  cfg.Params,
		workers: cfg.Concurrency,
		logger:  logger.Named("risk"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ScoreAddress scores address, stores its profile, logs the analysis and
// raises an alert for alerting bands.
func (s *Scorer) ScoreAddress(ctx context.Context, address string) (_ model.RiskFactors, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("score_address", err, start)
	}()

	if err = model.ValidateAddress(address, s.params); err != nil {
		return model.RiskFactors{}, err
	}

	reports, err := s.reports.ReportsForAddress(ctx, address, true)
	if err != nil {
		return model.RiskFactors{}, fmt.Errorf("load reports: %w", err)
	}
	categories := make([]string, 0, len(reports))
	for _, r := range reports {
		categories = append(categories, r.Category)
	}

	txs, err := s.gateway.LatestTransactions(ctx, address, 0)
	if err != nil {
		return model.RiskFactors{}, fmt.Errorf("load transactions: %w", err)
	}

	now := s.now()
	factors := s.policy.Score(len(reports), categories, model.LastActivity(txs), now)

	err = s.store.UpsertRiskProfile(ctx, model.RiskProfile{
		Address:   address,
		Band:      factors.Band,
		Total:     factors.Total,
		Factors:   factors,
		UpdatedAt: now,
	})
	if err != nil {
		return model.RiskFactors{}, fmt.Errorf("store risk profile: %w", err)
	}
	if _, err = s.log.Append(ctx, address, factors); err != nil {
		return model.RiskFactors{}, fmt.Errorf("log risk analysis: %w", err)
	}

	alert, raised, err := s.alerts.Raise(ctx, address, factors)
	if err != nil {
		return model.RiskFactors{}, fmt.Errorf("raise alert: %w", err)
	}
	if raised {
		s.logger.Info("risk alert raised", zap.String("address", address), zap.String("band", string(alert.Band)))
	}

	s.logger.Debug("address scored",
		zap.String("address", address),
		zap.Float64("total", factors.Total),
		zap.String("band", string(factors.Band)),
	)
	return factors, nil
}

// ScoreAllAddresses scores every stored address. Per-address failures are
// logged and counted; a missing feed credential or cancellation aborts the run.
func (s *Scorer) ScoreAllAddresses(ctx context.Context) (_ Summary, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("score_all_addresses", err, start)
	}()

	addresses, err := s.store.ListAddresses(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list addresses: %w", err)
	}

	pool := pond.NewPool(s.workers, pond.WithQueueSize(max(len(addresses), 1)))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	var scored, failed atomic.Int64
	for _, address := range addresses {
		address := address
		group.SubmitErr(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			if _, err := s.ScoreAddress(groupCtx, address); err != nil {
				if errors.Is(err, provider.ErrUnconfigured) || groupCtx.Err() != nil {
					return err
				}
				failed.Add(1)
				s.logger.Warn("address not scored", zap.String("address", address), zap.Error(err))
				return nil
			}
			scored.Add(1)
			return nil
		})
	}

	err = group.Wait()
	summary := Summary{Scored: int(scored.Load()), Failed: int(failed.Load())}
	if err != nil {
		return summary, fmt.Errorf("score addresses: %w", err)
	}

	s.logger.Info("scoring run finished",
		zap.Int("scored", summary.Scored),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}
