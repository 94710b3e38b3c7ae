package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corpreg/furnishings-engine/internal/authsvc"
	"github.com/corpreg/furnishings-engine/internal/config"
	"github.com/corpreg/furnishings-engine/internal/delivery"
	"github.com/corpreg/furnishings-engine/internal/documents"
	"github.com/corpreg/furnishings-engine/internal/infra/postgresql"
	"github.com/corpreg/furnishings-engine/internal/infra/postgresql/migrations"
	infraredis "github.com/corpreg/furnishings-engine/internal/infra/redis"
	"github.com/corpreg/furnishings-engine/internal/observability"
	"github.com/corpreg/furnishings-engine/internal/queue"
	"github.com/corpreg/furnishings-engine/internal/repository"
	"github.com/corpreg/furnishings-engine/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "furnishings run failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	baseLogger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = baseLogger.Sync() }()

	logger := observability.RunLogger(baseLogger, uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgresql.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := migrations.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := infraredis.NewRedis(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	limiter, err := infraredis.NewRedisRateLimiter(redisClient, cfg.AuthRateLimitPerSec)
	if err != nil {
		return err
	}

	rabbit, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		return err
	}
	publisher := queue.NewRabbitMQPublisher(rabbit)
	defer func() { _ = publisher.Close() }()

	contacts, err := authsvc.NewClient(authsvc.Config{
		AuthSvcURL:   cfg.AuthSvcURL,
		TokenURL:     cfg.AccountSvcAuthURL,
		ClientID:     cfg.AccountSvcClientID,
		ClientSecret: cfg.AccountSvcClientSecret,
	})
	if err != nil {
		return err
	}

	merger, err := documents.NewReportClient(cfg.ReportSvcURL)
	if err != nil {
		return err
	}

	var uploader delivery.Uploader
	if !cfg.DisableBCMailSFTP {
		sftpUploader, err := delivery.NewSFTPUploader(delivery.Config{
			Host:       cfg.BCMailSFTPHost,
			Port:       cfg.BCMailSFTPPort,
			Username:   cfg.BCMailSFTPUsername,
			Password:   cfg.BCMailSFTPPassword,
			PrivateKey: cfg.BCMailSFTPPrivateKey,
		})
		if err != nil {
			return err
		}
		uploader = sftpUploader
	}

	businessRepo := repository.NewGormBusinessRepo(db)
	furnishingRepo := repository.NewGormFurnishingRepo(db)
	batchRepo := repository.NewGormBatchRepo(db)

	metrics := observability.NewMetrics()
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.MetricsPort),
		Handler:           metricsHandler(metrics),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	stageOne, err := service.NewStageOneProcessor(
		businessRepo,
		furnishingRepo,
		contacts,
		publisher,
		limiter,
		cfg.SecondNoticeDelay,
		logger,
	)
	if err != nil {
		return err
	}
	stageOne.SetMetrics(metrics)

	assembler, err := service.NewLetterAssembler(
		furnishingRepo,
		merger,
		uploader,
		cfg.BCMailSFTPStorageDirectory,
		cfg.DisableBCMailSFTP,
		logger,
	)
	if err != nil {
		return err
	}
	assembler.SetMetrics(metrics)

	entries, err := batchRepo.ListStageOneEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list batch entries: %w", err)
	}
	logger.Info("stage one run starting",
		zap.Int("entries", len(entries)),
		zap.Int("secondNoticeDelayDays", cfg.SecondNoticeDelay),
		zap.Bool("sftpDisabled", cfg.DisableBCMailSFTP),
	)

	stageOne.Run(ctx, entries)

	if err := assembler.Run(ctx); err != nil {
		return err
	}

	logger.Info("furnishings run complete")
	return nil
}

func metricsHandler(metrics *observability.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
