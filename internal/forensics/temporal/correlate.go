// Package temporal finds addresses whose activity clusters in the same hours.
package temporal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	Window24h = "24h"
	Window7d  = "7d"
	Window30d = "30d"

	DefaultConcurrency = 4
	// MinScore is the lowest score reported as a correlated pair.
	MinScore  = 0.5
	tolerance = 6 * time.Hour
	bucketFmt = "2006-01-02 15:00"
)

type Config struct {
	Params      *chaincfg.Params
	Concurrency int
}

type Detector struct {
	gateway     Gateway
	store       Store
	metrics     Metrics
	params      *chaincfg.Params
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

func NewDetector(gateway Gateway, store Store, metrics Metrics, cfg Config, logger *zap.Logger) *Detector {
	if cfg.Params == nil {
		cfg.Params = &chaincfg.MainNetParams
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Detector{
		gateway:     gateway,
		store:       store,
		metrics:     metrics,
		params:      cfg.Params,
		concurrency: cfg.Concurrency,
		logger:      logger.Named("temporal"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WindowDuration maps a window name to its length. Unknown names mean 30 days.
func WindowDuration(window string) (string, time.Duration) {
	switch strings.ToLower(window) {
	case Window24h:
		return Window24h, 24 * time.Hour
	case Window7d:
		return Window7d, 7 * 24 * time.Hour
	default:
		return Window30d, 30 * 24 * time.Hour
	}
}

// Correlate buckets the recent transactions of every address by hour and
// scores each pair by how many of their active hours lie within six hours of
// each other. The run is stored as a new snapshot.
func (d *Detector) Correlate(ctx context.Context, addresses []string, window string) (_ model.TemporalCorrelation, err error) {
	start := time.Now()
	defer func() {
		d.metrics.Observe("correlate", err, start)
	}()

	addresses = model.UniqueAddresses(addresses)
	if len(addresses) < 2 {
		return model.TemporalCorrelation{}, &model.ValidationError{
			Entity: "correlation addresses",
			Key:    strings.Join(addresses, ","),
			Err:    errors.New("at least two distinct addresses are required"),
		}
	}
	for _, a := range addresses {
		if err = model.ValidateAddress(a, d.params); err != nil {
			return model.TemporalCorrelation{}, err
		}
	}

	name, length := WindowDuration(window)
	now := d.now()
	since := now.Add(-length)

	fetched, err := workerpool.Collect(ctx, d.concurrency, addresses,
		func(ctx context.Context, address string) ([]model.Transaction, error) {
			return d.gateway.LatestTransactions(ctx, address, 0)
		},
		func(address string, err error) {
			d.logger.Warn("address without transactions", zap.String("address", address), zap.Error(err))
		},
	)
	if err != nil {
		return model.TemporalCorrelation{}, err
	}

	c := model.TemporalCorrelation{
		Addresses: addresses,
		Window:    name,
		Series:    make(map[string]model.HourSeries, len(addresses)),
		Pairs:     []model.CorrelatedPair{},
		CreatedAt: now,
	}
	// A transaction shared by several addresses counts once in the total.
	counted := make(map[string]struct{})
	for _, a := range addresses {
		txs, _ := fetched.Load(a)
		series := make(model.HourSeries)
		for _, tx := range txs {
			ts := tx.Timestamp.UTC()
			if ts.Before(since) || ts.After(now) {
				continue
			}
			series[ts.Truncate(time.Hour).Format(bucketFmt)]++
			if _, ok := counted[tx.Hash]; !ok {
				counted[tx.Hash] = struct{}{}
				c.TotalTransactions++
			}
		}
		c.Series[a] = series
	}

	for i := 0; i < len(addresses); i++ {
		for j := i + 1; j < len(addresses); j++ {
			score := Score(c.Series[addresses[i]], c.Series[addresses[j]])
			if score >= MinScore {
				c.Pairs = append(c.Pairs, model.CorrelatedPair{A: addresses[i], B: addresses[j], Score: score})
			}
		}
	}

	c, err = d.store.InsertTemporalCorrelation(ctx, c)
	if err != nil {
		return model.TemporalCorrelation{}, fmt.Errorf("store correlation: %w", err)
	}
	return c, nil
}

// Score is the share of a's hour buckets with a bucket of b at most six hours
// away, over the larger bucket count, rounded to two decimals.
func Score(a, b model.HourSeries) float64 {
	denominator := max(len(a), len(b))
	if denominator == 0 {
		return 0
	}

	hoursB := make([]time.Time, 0, len(b))
	for key := range b {
		if h, err := time.Parse(bucketFmt, key); err == nil {
			hoursB = append(hoursB, h)
		}
	}

	var matches int
	for key := range a {
		h, err := time.Parse(bucketFmt, key)
		if err != nil {
			continue
		}
		for _, other := range hoursB {
			diff := h.Sub(other)
			if diff >= -tolerance && diff <= tolerance {
				matches++
				break
			}
		}
	}
	return math.Round(float64(matches)/float64(denominator)*100) / 100
}
