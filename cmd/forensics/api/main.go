package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/app"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/transport"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var config struct {
	Addr        string `long:"addr" env:"FORENSICS_API_ADDR" description:"gRPC health addr" default:":8000"`
	RestAddr    string `long:"rest-addr" env:"FORENSICS_API_REST_ADDR" description:"rest addr" default:":8001"`
	MetricsAddr string `long:"metrics-addr" env:"FORENSICS_API_METRICS_ADDR" description:"metrics addr" default:":9100"`

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
	grpcZap.ReplaceGrpcLoggerV2(logger)
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

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	gw := gwruntime.NewServeMux()
	handler := transport.NewForensicsHandler(transport.Dependencies{
		Gateway:    forensics.Gateway,
		Tracer:     forensics.Tracer,
		Clusters:   forensics.Clusters,
		Scorer:     forensics.Scorer,
		Reports:    forensics.Reports,
		Patterns:   forensics.Patterns,
		Dossiers:   forensics.Dossiers,
		Correlator: forensics.Correlator,
	}, logger)
	if err := handler.Register(gw); err != nil {
		logger.Fatal("Register forensics handler", zap.Error(err))
	}

	restServer := newHTTPServer(config.RestAddr, cors.Default().Handler(gw))
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := newHTTPServer(config.MetricsAddr, metricsMux)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		socket, err := net.Listen("tcp", config.Addr)
		if err != nil {
			return err
		}
		logger.Info("Starting gRPC server", zap.String("addr", config.Addr))
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		return grpcServer.Serve(socket)
	})
	g.Go(func() error {
		return serve(logger, restServer)
	})
	g.Go(func() error {
		return serve(logger, metricsServer)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers")
		healthServer.Shutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return errors.Join(restServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func serve(logger *zap.Logger, s *http.Server) error {
	logger.Info("Starting HTTP server", zap.String("addr", s.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
