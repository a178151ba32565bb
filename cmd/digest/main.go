package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"trend_digest/internal/config"
	"trend_digest/internal/publisher"
	"trend_digest/internal/scheduler"
	"trend_digest/internal/service"
	"trend_digest/internal/source/rss"
	"trend_digest/internal/storage/postgres"
	"trend_digest/internal/summarizer"
	"trend_digest/internal/trend"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	eventStore := postgres.NewEventStore(db)
	searchQueryStore := postgres.NewSearchQueryStore(db)
	trendStore := postgres.NewTrendStore(db)
	ideaStore := postgres.NewIdeaStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Analysis core
	detector := trend.NewDetector(trend.DetectorConfig{
		MinGrowthRate: cfg.Analysis.MinGrowthRate,
		MaxResults:    cfg.Analysis.MaxResults,
	})
	sentimentAnalyzer := trend.NewSentimentAnalyzer(trend.SentimentConfig{})

	// Blog-idea generation is optional; no API key disables it.
	var generator service.IdeaGenerator
	if cfg.LLM.APIKey != "" {
		generator = summarizer.NewClient(summarizer.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			APIKey:  cfg.LLM.APIKey,
			Timeout: cfg.LLM.Timeout,
		}, logger)
	}

	analysisService := service.NewAnalysisService(
		eventStore,
		searchQueryStore,
		trendStore,
		ideaStore,
		txManager,
		rabbitMQ,
		generator,
		detector,
		sentimentAnalyzer,
		logger,
		cfg.Analysis,
	)

	rssSource := rss.New(rss.Config{
		Feeds:          cfg.Ingest.Feeds,
		Timeout:        cfg.Ingest.Timeout,
		MaxItemsPer:    cfg.Ingest.MaxItemsPer,
		MaxAttempts:    cfg.Ingest.MaxAttempts,
		InitialBackoff: cfg.Ingest.InitialBackoff,
		MaxBackoff:     cfg.Ingest.MaxBackoff,
	}, logger)

	ingestService := service.NewIngestService(rssSource, eventStore, logger, cfg.Ingest)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting trend digest",
		"feeds", len(cfg.Ingest.Feeds),
		"ingest_interval", cfg.Ingest.Interval,
		"analysis_interval", cfg.Analysis.Interval,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.NewScheduler("ingest", ingestService, cfg.Ingest.Interval, logger).Start(gctx)
	})
	g.Go(func() error {
		return scheduler.NewScheduler("analysis", analysisService, cfg.Analysis.Interval, logger).Start(gctx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
