// Package app wires the forensic services shared by the API and scorer binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/alerting"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/analysislog"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/cluster"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/dossier"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/gateway"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/pattern"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider/blockcypher"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider/chainabuse"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider/walletexplorer"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/reports"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/risk"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/temporal"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/tracer"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-forensics/pkg/batcher"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired services.
type App struct {
	Repository  *clickhouse.Repository
	Gateway     *gateway.Gateway
	Reports     *reports.Service
	Tracer      *tracer.Tracer
	Clusters    *cluster.Detector
	Scorer      *risk.Scorer
	Correlator  *temporal.Detector
	Patterns    *pattern.Detector
	Dossiers    *dossier.Builder
	AnalysisLog *analysislog.Log

	closers []func() error
	logger  *zap.Logger
}

// Initialize connects to the store and the optional alert sinks and builds every service.
func Initialize(ctx context.Context, cfg Config, logger *zap.Logger) (*App, error) {
	params, err := Params(cfg.Network)
	if err != nil {
		return nil, err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(), logger)
	if err != nil {
		return nil, fmt.Errorf("init clickhouse repository: %w", err)
	}
	a := &App{Repository: repo, logger: logger}
	a.closers = append(a.closers, repo.Close)

	if err := repo.Ping(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	sinks, err := a.alertSinks(ctx, cfg)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	policy := provider.DefaultPolicy()
	if cfg.RetryAttempts > 0 {
		policy.MaxAttempts = cfg.RetryAttempts
	}
	pacer := provider.NewPacer(cfg.ProviderRPS, cfg.ProviderMaxDelay)
	httpClient := &http.Client{}

	chain := blockcypher.NewClient(blockcypher.Config{
		BaseURL: cfg.BlockcypherURL,
		Tokens:  cfg.BlockcypherTokens,
		Timeout: cfg.ProviderTimeout,
		Policy:  policy,
	}, httpClient, pacer, metrics.NewProvider("blockcypher"), logger)
	feed := chainabuse.NewClient(chainabuse.Config{
		BaseURL:  cfg.ChainabuseURL,
		APIKey:   cfg.ChainabuseAPIKey,
		MaxPages: cfg.ChainabusePages,
		Timeout:  cfg.ProviderTimeout,
	}, httpClient, metrics.NewProvider("chainabuse"), logger)
	labeler := walletexplorer.NewClient(walletexplorer.Config{
		BaseURL: cfg.WalletexplorerURL,
		Caller:  cfg.WalletexplorerCaller,
		Timeout: cfg.ProviderTimeout,
		Policy:  policy,
	}, httpClient, pacer, metrics.NewProvider("walletexplorer"), logger)

	analytics := metrics.NewAnalytics()
	riskPolicy := risk.DefaultPolicy()

	a.Gateway = gateway.New(chain, repo, params, cfg.TxLimit, logger)
	a.Reports = reports.NewService(feed, repo, logger)
	a.Tracer = tracer.New(a.Gateway, repo, analytics, tracer.Config{Params: params, Concurrency: cfg.Concurrency}, logger)
	a.Clusters = cluster.NewDetector(labeler, a.Gateway, a.Reports, riskPolicy, repo, analytics, params, logger)
	a.AnalysisLog = analysislog.New(repo, batcher.Config{
		Size:     cfg.AnalysisBatchSize,
		Interval: cfg.AnalysisFlushInterval,
		RPS:      cfg.AnalysisRPS,
	}, logger)
	notifier := alerting.NewNotifier(repo, metrics.NewAlerts(), logger, sinks...)
	a.Scorer = risk.NewScorer(a.Reports, a.Gateway, repo, a.AnalysisLog, notifier, analytics, risk.Config{
		Policy:      riskPolicy,
		Params:      params,
		Concurrency: cfg.Concurrency,
	}, logger)
	a.Correlator = temporal.NewDetector(a.Gateway, repo, analytics, temporal.Config{Params: params, Concurrency: cfg.Concurrency}, logger)
	a.Patterns = pattern.NewDetector(a.Gateway, repo, analytics, pattern.DefaultRules(), cfg.TxLimit, logger)
	a.Dossiers = dossier.NewBuilder(a.Gateway, a.Reports, repo, cfg.Concurrency, logger)

	return a, nil
}

func (a *App) alertSinks(ctx context.Context, cfg Config) ([]alerting.Sink, error) {
	var sinks []alerting.Sink

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		sinks = append(sinks, alerting.NewRedisSink(client, cfg.RedisChannel))
		a.logger.Info("publishing alerts to redis", zap.String("addr", cfg.RedisAddr), zap.String("channel", cfg.RedisChannel))
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := alerting.NewKafkaProducer(cfg.KafkaBrokers, sarama.NewConfig())
		if err != nil {
			return nil, err
		}
		sink := alerting.NewKafkaSink(producer, cfg.KafkaTopic)
		a.closers = append(a.closers, sink.Close)
		sinks = append(sinks, sink)
		a.logger.Info("publishing alerts to kafka", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	return sinks, nil
}

// Start runs the background writers until ctx is done or Close is called.
func (a *App) Start(ctx context.Context) {
	a.AnalysisLog.Start(ctx)
}

// Close flushes pending analyses and releases connections in reverse order.
func (a *App) Close() error {
	if a.AnalysisLog != nil {
		a.AnalysisLog.Stop()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
