package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/veridoc-ai/veridoc/internal/async"
	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/credentials"
	_ "github.com/veridoc-ai/veridoc/internal/llm/openai"
	"github.com/veridoc-ai/veridoc/internal/orchestrator"
	"github.com/veridoc-ai/veridoc/internal/parser"
	"github.com/veridoc-ai/veridoc/internal/repository"
	"github.com/veridoc-ai/veridoc/internal/storage"
	"github.com/veridoc-ai/veridoc/internal/validator"
	"github.com/veridoc-ai/veridoc/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health failed", "error", err)
		os.Exit(1)
	}

	// Credentials
	masterKey, err := credentials.ParseMasterKey(cfg.Crypto.MasterKeyHex)
	if err != nil {
		logger.Error("invalid CREDENTIAL_MASTER_KEY", "error", err)
		os.Exit(1)
	}
	resolver := credentials.NewResolver(masterKey, cfg.LLM.APIKey, logger)

	// Queue
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("redis ping failed", "error", err)
		os.Exit(1)
	}
	queue := async.NewRedisQueue(rdb, async.RedisConfig{
		QueueKey:   cfg.Redis.QueueKey,
		DedupTTL:   cfg.Redis.DedupTTL,
		RateLimit:  cfg.Worker.RateLimit,
		RateWindow: cfg.Worker.RateWindow,
	}, logger)
	defer queue.Close()

	// Orchestrator
	metrics := worker.DefaultMetrics()
	orch := orchestrator.New(orchestrator.Deps{
		Runs:          repository.NewRunRepository(entc, logger),
		Steps:         repository.NewRunStepRepository(entc, logger),
		Documents:     repository.NewDocumentRepository(entc, logger),
		Records:       repository.NewRecordRepository(entc, logger),
		Projects:      repository.NewProjectRepository(entc, logger),
		Store:         storage.NewHTTPStore(cfg.Storage.BaseURL, cfg.Storage.FetchTimeout, logger),
		Creds:         resolver,
		Parser:        parser.New(logger),
		Validator:     validator.New(logger),
		LLM:           cfg.LLM,
		Log:           logger,
		DocsProcessed: metrics.DocumentsProcessed,
		DocsSkipped:   metrics.DocumentsSkipped,
	})

	// Worker pool
	pool2 := worker.NewPool(queue, orch, metrics, cfg.Worker.Concurrency, logger)
	workerDone := make(chan error, 1)
	go func() { workerDone <- pool2.Run(ctx) }()

	// Metrics endpoint
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{Addr: cfg.Worker.MetricsAddr, Handler: mux}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	// gRPC health + reflection, for probes and grpcurl
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
		}
	}()

	logger.Info("veridocd started",
		"concurrency", cfg.Worker.Concurrency,
		"queue", cfg.Redis.QueueKey,
		"metrics", cfg.Worker.MetricsAddr,
	)

	<-ctx.Done()
	logger.Info("shutting down")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)

	if err := <-workerDone; err != nil {
		logger.Error("worker pool exited with error", "error", err)
	}
	logger.Info("stopped")
}
