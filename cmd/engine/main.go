package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hexsight/contextspace/internal/adapter/contextapi"
	"github.com/hexsight/contextspace/internal/adapter/hexgrid"
	"github.com/hexsight/contextspace/internal/adapter/httpapi"
	kafkaadapter "github.com/hexsight/contextspace/internal/adapter/kafka"
	"github.com/hexsight/contextspace/internal/config"
	"github.com/hexsight/contextspace/internal/domain"
	"github.com/hexsight/contextspace/internal/engine"
	"github.com/hexsight/contextspace/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	if err := domain.ValidateCatalog(); err != nil {
		logger.Error("action catalog invalid", "error", err)
		os.Exit(1)
	}

	// External dimension provider (feature-flagged via CONTEXT_API_URL /
	// CONTEXT_API_ENABLED). Without it every tensor is synthesized.
	var provider domain.DimensionProvider
	if cfg.ContextAPIEnabled {
		client := contextapi.NewClient(cfg.ContextAPIURL, cfg.ContextAPITimeout, logger, metrics)
		provider = contextapi.NewCachedProvider(client, cfg.ContextAPICacheSize, metrics)
		logger.Info("context API provider enabled", "cache_size", cfg.ContextAPICacheSize, "timeout", cfg.ContextAPITimeout)
	} else {
		logger.Info("context API provider disabled, using procedural synthesis only")
	}

	// Kafka renderer sink (feature-flagged via KAFKA_BROKERS / RENDERER_ENABLED).
	var renderer engine.Renderer
	var rendererSink *kafkaadapter.Renderer
	if cfg.RendererEnabled {
		rendererSink = kafkaadapter.NewRenderer(cfg, logger)
		renderer = rendererSink
		logger.Info("kafka renderer enabled", "topic", cfg.RendererTopic)
	} else {
		logger.Info("kafka renderer disabled")
	}

	eng := engine.New(
		engine.Config{Workers: cfg.EngineWorkers},
		hexgrid.New(),
		provider,
		renderer,
		logger,
		metrics,
	)

	srv := httpapi.NewServer(cfg.HTTPAddr, eng, eng, logger)

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
	if rendererSink != nil {
		if err := rendererSink.Close(); err != nil {
			logger.Error("kafka renderer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
