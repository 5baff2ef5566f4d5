package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/larseberhart/nuccalc/internal/adapter/http"
	kafkaadapter "github.com/larseberhart/nuccalc/internal/adapter/kafka"
	"github.com/larseberhart/nuccalc/internal/catalog"
	"github.com/larseberhart/nuccalc/internal/config"
	"github.com/larseberhart/nuccalc/internal/observability"
	"github.com/larseberhart/nuccalc/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cat, err := catalog.Load(cfg.WeaponsFile, cfg.CitiesFile)
	if err != nil {
		logger.Error("failed to load catalogs", "error", err)
		os.Exit(1)
	}
	logger.Info("catalogs loaded",
		"weapons", len(cat.Weapons()), "cities", len(cat.Cities()))

	// Initialize result publisher (feature-flagged via PUBLISH_ENABLED).
	var (
		publisher service.Publisher
		writer    *kafkaadapter.Writer
	)
	if cfg.PublishEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		metrics.PublisherEnabled.Set(1)
		logger.Info("result publishing enabled",
			"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaResultTopic)
	} else {
		metrics.PublisherEnabled.Set(0)
		logger.Info("result publishing disabled")
	}

	svc := service.New(cat, publisher, logger, metrics, cfg.CasualtyRings)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
