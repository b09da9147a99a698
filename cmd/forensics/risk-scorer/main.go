package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/app"
	"github.com/jessevdk/go-flags"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var config struct {
	Schedule   string        `long:"schedule" env:"RISK_SCORER_SCHEDULE" default:"@every 6h" description:"cron spec (seconds field supported)"`
	RunOnStart bool          `long:"run-on-start" env:"RISK_SCORER_RUN_ON_START" description:"score every address once before the first tick"`
	RunTimeout time.Duration `long:"run-timeout" env:"RISK_SCORER_RUN_TIMEOUT" default:"1h" description:"upper bound of a single scoring run"`

	Forensics app.Config `group:"forensics"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	forensics, err := app.Initialize(ctx, config.Forensics, logger)
	if err != nil {
		logger.Fatal("Failed to initialize forensics services", zap.Error(err))
	}
	defer func() {
		if err := forensics.Close(); err != nil {
			logger.Error("Failed to close forensics services", zap.Error(err))
		}
	}()
	forensics.Start(ctx)

	run := func() {
		runCtx, cancel := context.WithTimeout(ctx, config.RunTimeout)
		defer cancel()
		started := time.Now()
		summary, err := forensics.Scorer.ScoreAllAddresses(runCtx)
		if err != nil {
			logger.Error("Scoring run failed", zap.Error(err))
			return
		}
		logger.Info("Scoring run finished",
			zap.Int("scored", summary.Scored),
			zap.Int("failed", summary.Failed),
			zap.Duration("took", time.Since(started)))
	}

	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger.Named("cron")))
	scheduler := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	if _, err := scheduler.AddFunc(config.Schedule, run); err != nil {
		logger.Fatal("Invalid schedule", zap.String("schedule", config.Schedule), zap.Error(err))
	}

	if config.RunOnStart {
		run()
	}

	scheduler.Start()
	logger.Info("Risk scorer started", zap.String("schedule", config.Schedule))

	<-ctx.Done()
	logger.Info("Stopping risk scorer")
	<-scheduler.Stop().Done()
}
