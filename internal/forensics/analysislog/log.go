// Package analysislog appends risk analyses to the store in batches.
package analysislog

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/batcher"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Log struct {
	batcher *batcher.Batcher[model.RiskAnalysis]
	newID   func() uuid.UUID
	now     func() time.Time
}

func New(store Store, cfg batcher.Config, logger *zap.Logger) *Log {
	logger = logger.Named("analysislog")
	return &Log{
		batcher: batcher.New(cfg, func(ctx context.Context, analyses []model.RiskAnalysis) error {
			if err := store.InsertRiskAnalyses(ctx, analyses); err != nil {
				return fmt.Errorf("insert risk analyses: %w", err)
			}
			return nil
		}, logger),
		newID: uuid.New,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (l *Log) Start(ctx context.Context) {
	l.batcher.Start(ctx)
}

// Stop writes the queued analyses and returns once they are flushed.
func (l *Log) Stop() {
	l.batcher.Stop()
}

// Append queues one analysis of address and returns it as it will be stored.
func (l *Log) Append(ctx context.Context, address string, factors model.RiskFactors) (model.RiskAnalysis, error) {
	a := model.RiskAnalysis{
		ID:         l.newID(),
		Address:    address,
		Factors:    factors,
		AnalyzedAt: l.now(),
	}
	if err := l.batcher.Add(ctx, a); err != nil {
		return model.RiskAnalysis{}, fmt.Errorf("queue risk analysis: %w", err)
	}
	return a, nil
}
