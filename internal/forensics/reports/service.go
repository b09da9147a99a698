package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"go.uber.org/zap"
)

// Service serves scam reports from the store and the external report feed.
type Service struct {
	feed   Feed
	store  Store
	logger *zap.Logger
}

func NewService(feed Feed, store Store, logger *zap.Logger) *Service {
	return &Service{feed: feed, store: store, logger: logger.Named("reports")}
}

// ReportsForAddress returns the reports filed against address. Stored reports
// are served unless refresh is set; when the feed is rate limited or down the
// stored reports are returned instead. A missing feed key is fatal.
func (s *Service) ReportsForAddress(ctx context.Context, address string, refresh bool) ([]model.Report, error) {
	if !refresh {
		stored, err := s.StoredReports(ctx, []string{address})
		if err != nil {
			return nil, err
		}
		if len(stored) > 0 {
			return stored, nil
		}
	}

	fetched, err := s.feed.Reports(ctx, address)
	if err != nil {
		if !provider.Degradable(err) && !errors.Is(err, provider.ErrChallengeDetected) {
			return nil, fmt.Errorf("fetch reports: %w", err)
		}
		s.logger.Warn("report feed unavailable, using stored reports",
			zap.String("address", address),
			zap.Error(err),
		)
		return s.StoredReports(ctx, []string{address})
	}

	if err := s.store.UpsertReports(ctx, fetched); err != nil {
		return nil, fmt.Errorf("store reports: %w", err)
	}
	return fetched, nil
}

// StoredReports returns the cached reports of addresses without calling the feed.
func (s *Service) StoredReports(ctx context.Context, addresses []string) ([]model.Report, error) {
	stored, err := s.store.ReportsByAddresses(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	return stored, nil
}
